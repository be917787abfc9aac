package coloranalysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// parseAnalysis decodes the model output into a ColorAnalysis and checks its shape.
func parseAnalysis(v *validator.Validate, raw string) (ColorAnalysis, error) {
	content := stripCodeFence(raw)
	if content == "" {
		return ColorAnalysis{}, errors.New("empty llm content")
	}

	var analysis ColorAnalysis
	dec := json.NewDecoder(strings.NewReader(content))
	if err := dec.Decode(&analysis); err != nil {
		return ColorAnalysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ColorAnalysis{}, errors.New("decode analysis: trailing data after object")
	}
	if err := v.Struct(analysis); err != nil {
		return ColorAnalysis{}, fmt.Errorf("analysis shape: %w", describeValidation(err))
	}
	return analysis, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(s, "`")
	return strings.TrimSpace(s)
}

func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, "; "))
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
