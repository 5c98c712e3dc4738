package evaluating

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
)

// validator.Validate é seguro para uso concorrente e guarda cache das structs
var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reporta os campos com o nome do JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateAssumptions aplica as mesmas regras de intervalo de Evaluate.
// Usado também na carga do catálogo de cenários.
func ValidateAssumptions(a domain.Assumptions) error {
	return validateAll(defaultValidator, a)
}

func (s *Service) validate(section string, value any) error {
	return validateSection(s.validator, section, value)
}

// validateSection converte os erros do validator em EvaluationError
func validateSection(v *validator.Validate, section string, value any) error {
	err := v.Struct(value)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &EvaluationError{Err: ErrInvalidAssumptions, Code: apiErrors.ErrInvalidAssumptions}
	}

	details := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Namespace()
		// Remove o nome do tipo raiz (ex.: InvestmentAssumptions.horizon_years)
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if section != "" {
			field = section + "." + field
		}

		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[field] = rule
	}

	return &EvaluationError{
		Err:     ErrInvalidAssumptions,
		Code:    apiErrors.ErrInvalidAssumptions,
		Details: details,
	}
}

func validateAll(v *validator.Validate, a domain.Assumptions) error {
	sections := []struct {
		name  string
		value any
	}{
		{"investment", a.Investment},
		{"saas", a.SaaS},
		{"liquidity", a.Liquidity},
		{"break_even", a.BreakEven},
		{"stress", a.Stress},
	}

	var merged *EvaluationError
	for _, section := range sections {
		err := validateSection(v, section.name, section.value)
		if err == nil {
			continue
		}

		evalErr, ok := err.(*EvaluationError)
		if !ok {
			return err
		}
		if merged == nil {
			merged = &EvaluationError{Err: evalErr.Err, Code: evalErr.Code, Details: map[string]string{}}
		}
		for k, v := range evalErr.Details {
			merged.Details[k] = v
		}
	}

	if merged != nil {
		return merged
	}
	return nil
}
