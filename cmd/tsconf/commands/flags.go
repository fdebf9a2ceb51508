package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsconf/internal/app"
	"go.trai.ch/tsconf/internal/core/domain"
)

// addRequestFlags registers the flags shared by every command that resolves.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("search-name", "s", domain.DefaultSearchName, "Configuration filename to search for")
	cmd.Flags().StringP("file", "f", "", "Explicit configuration file, directory or npm:<package>")
	cmd.Flags().String("cache", "", "Cache strategy: never, always or directory")
	cmd.Flags().Bool("ignore-extends", false, "Do not follow the extends chain")
}

func requestOptions(cmd *cobra.Command) (app.ResolveOptions, error) {
	searchName, _ := cmd.Flags().GetString("search-name")
	file, _ := cmd.Flags().GetString("file")
	cacheName, _ := cmd.Flags().GetString("cache")
	ignoreExtends, _ := cmd.Flags().GetBool("ignore-extends")

	strategy, err := domain.ParseCacheStrategy(cacheName)
	if err != nil {
		return app.ResolveOptions{}, err
	}

	return app.ResolveOptions{
		SearchName:    searchName,
		FilePath:      file,
		CacheStrategy: strategy,
		IgnoreExtends: ignoreExtends,
	}, nil
}
