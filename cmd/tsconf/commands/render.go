package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
	"go.trai.ch/tsconf/internal/app"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatJSON format = "json"
	formatYAML format = "yaml"
)

// renderer writes documents to out and the human summary to errOut.
type renderer struct {
	out    io.Writer
	errOut io.Writer

	path  lipgloss.Style
	muted lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
}

func newRenderer(out, errOut io.Writer) *renderer {
	lr := lipgloss.NewRenderer(errOut)
	return &renderer{
		out:    out,
		errOut: errOut,
		path:   lr.NewStyle().Foreground(style.Iris),
		muted:  lr.NewStyle().Foreground(style.Slate),
		ok:     lr.NewStyle().Foreground(style.Green),
		fail:   lr.NewStyle().Foreground(style.Red),
	}
}

// documents prints the merged document of every success. With keyed set the
// documents are wrapped in a mapping from configuration path to document.
func (r *renderer) documents(outcomes []app.Outcome, f format, keyed bool) error {
	var value any
	if keyed {
		byPath := make(map[string]domain.Document, len(outcomes))
		for _, o := range outcomes {
			if s, ok := o.Result.(*domain.Success); ok {
				byPath[s.Path] = s.Config
			}
		}
		value = byPath
	} else {
		for _, o := range outcomes {
			if s, ok := o.Result.(*domain.Success); ok {
				value = s.Config
			}
		}
		if value == nil {
			return nil
		}
	}

	data, err := encode(value, f)
	if err != nil {
		return err
	}
	_, err = r.out.Write(data)
	return err
}

// query prints the value at path for every success, one per line.
func (r *renderer) query(outcomes []app.Outcome, path string) error {
	for _, o := range outcomes {
		s, ok := o.Result.(*domain.Success)
		if !ok {
			continue
		}

		data, err := json.Marshal(s.Config)
		if err != nil {
			return zerr.Wrap(err, "failed to encode configuration")
		}

		res := gjson.GetBytes(data, path)
		if !res.Exists() {
			return zerr.With(zerr.With(domain.ErrQueryNoMatch, "query", path), "path", s.Path)
		}

		out := res.String()
		if res.IsObject() || res.IsArray() {
			out = res.Raw
		}
		if _, err := fmt.Fprintln(r.out, out); err != nil {
			return err
		}
	}
	return nil
}

// summary writes one block per outcome with the extends chain and fingerprint.
func (r *renderer) summary(outcomes []app.Outcome, chain, fingerprint bool) {
	for _, o := range outcomes {
		s, ok := o.Result.(*domain.Success)
		if !ok {
			label := o.Dir
			if invalid, isInvalid := o.Result.(*domain.InvalidConfig); isInvalid {
				label = invalid.Path
			}
			_, _ = fmt.Fprintf(r.errOut, "%s %s %s\n",
				r.fail.Render(style.Cross), r.path.Render(label), r.muted.Render(string(o.Result.Reason())))
			continue
		}

		_, _ = fmt.Fprintf(r.errOut, "%s %s\n", r.ok.Render(style.Check), r.path.Render(s.Path))
		if chain {
			for _, p := range s.ExtendedPaths {
				_, _ = fmt.Fprintf(r.errOut, "  %s %s\n", r.muted.Render(style.Arrow), p)
			}
		}
		if fingerprint {
			_, _ = fmt.Fprintf(r.errOut, "  %s %016x\n", r.muted.Render("fingerprint"), s.Fingerprint)
		}
	}
}

func encode(value any, f format) ([]byte, error) {
	switch f {
	case formatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode configuration as yaml")
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode configuration as json")
		}
		return append(data, '\n'), nil
	}
}
