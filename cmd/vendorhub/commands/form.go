package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"vendorhub/internal/domain"
	"vendorhub/internal/schema"
)

// loadForm assembles the working form: the saved draft (unless a form
// file replaces it), then --set overrides on top.
func loadForm(formFile string, sets []string) (*domain.Form, error) {
	var form *domain.Form

	if formFile != "" {
		b, err := os.ReadFile(formFile)
		if err != nil {
			return nil, err
		}
		form = domain.NewForm()
		if err := json.Unmarshal(b, form); err != nil {
			return nil, fmt.Errorf("parse %s: %w", formFile, err)
		}
	} else {
		draft, ok, err := appCtx.Drafts.Load()
		if err != nil {
			return nil, err
		}
		if ok {
			form = draft
		} else {
			form = domain.NewForm()
		}
	}

	for _, set := range sets {
		name, raw, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: expected name=value", set)
		}
		form.Set(name, coerce(name, raw))
	}
	return form, nil
}

// coerce converts a raw flag value according to the field's declared
// kind. Unparsable input stays text so the validation engine can report
// it with the proper message.
func coerce(name, raw string) domain.Value {
	switch schema.KindOf(name) {
	case schema.Boolean:
		if b, err := strconv.ParseBool(raw); err == nil {
			return domain.Bool(b)
		}
	case schema.Number:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return domain.Number(n)
		}
	}
	return domain.Text(raw)
}

// printFieldErrors lists a field-to-message map in stable order.
func printFieldErrors(errs map[string]string) {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-32s %s\n", name, errs[name])
	}
}
