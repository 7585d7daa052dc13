package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/payforms/internal/client/forms"
	"github.com/dmitrijs2005/payforms/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Open runs one screen: prompt, submit, print, then follow Next.
func (a *App) Open(ctx context.Context, name string) error {
	for name != "" {
		spec, ok := forms.Lookup(a.specs, name)
		if !ok {
			return fmt.Errorf("unknown screen %q", name)
		}

		next, err := a.runScreen(ctx, spec)
		if err != nil {
			return err
		}
		name = next
	}
	return nil
}

func (a *App) runScreen(ctx context.Context, spec forms.Spec) (string, error) {
	form := forms.New(spec, a.sender, a.log)
	defer form.Close()

	fmt.Fprintf(a.out, "== %s ==\n", spec.Title)

	if !spec.AutoSubmit {
		if err := a.fill(form); err != nil {
			return "", err
		}
	}

	out := form.Submit(ctx)
	if out.Skipped {
		return "", out.Err
	}

	fmt.Fprintln(a.out, out.Result)
	if !out.OK {
		return "", nil
	}
	return out.Next, nil
}

func (a *App) fill(form *forms.Form) error {
	for _, f := range form.Spec().Fields {
		label := f.Label
		if f.Optional {
			label += " (optional)"
		}

		if f.Secret {
			pw, err := getPassword(a.out, label)
			if err != nil {
				return err
			}
			form.Set(f.Key, string(pw))
			common.WipeByteArray(pw)
			continue
		}

		v, err := getSimpleText(a.reader, label, a.out)
		if err != nil {
			return err
		}
		form.Set(f.Key, v)
	}
	return nil
}
