package registration

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	model "github.com/rmncha/health-assistant/backend/internal/model/registration"
)

// FieldError describes one rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level problem of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid registration: " + strings.Join(names, ", ")
}

var fieldMessages = map[string]map[locale.Language]string{
	"name": {
		locale.English: "Name must be at least 2 characters",
		locale.Hindi:   "नाम कम से कम 2 अक्षरों का होना चाहिए",
	},
	"age": {
		locale.English: "Age must be between 18 and 60",
		locale.Hindi:   "आयु 18 से 60 वर्ष के बीच होनी चाहिए",
	},
	"phone": {
		locale.English: "Phone must be at least 10 digits",
		locale.Hindi:   "फ़ोन नंबर कम से कम 10 अंकों का होना चाहिए",
	},
	"email": {
		locale.English: "Please enter a valid email",
		locale.Hindi:   "कृपया एक मान्य ईमेल दर्ज करें",
	},
	"address": {
		locale.English: "Address must be at least 5 characters",
		locale.Hindi:   "पता कम से कम 5 अक्षरों का होना चाहिए",
	},
	"district": {
		locale.English: "District must be at least 2 characters",
		locale.Hindi:   "ज़िला कम से कम 2 अक्षरों का होना चाहिए",
	},
	"state": {
		locale.English: "State must be at least 2 characters",
		locale.Hindi:   "राज्य कम से कम 2 अक्षरों का होना चाहिए",
	},
	"conceiveDate": {
		locale.English: "Conception date must be a valid date",
		locale.Hindi:   "गर्भधारण की तारीख एक मान्य तारीख होनी चाहिए",
	},
	"preferredLanguage": {
		locale.English: "Preferred language is required",
		locale.Hindi:   "पसंदीदा भाषा आवश्यक है",
	},
}

// Service validates and stores registrations.
type Service struct {
	store    model.Store
	validate *validator.Validate
}

// NewService wires the validator and the backing store.
// It panics if the custom validation rules cannot be registered.
func NewService(store model.Store) *Service {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return &Service{store: store, validate: v}
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("register iso8601 validation: %w", err)
	}
	return v, nil
}

// Language resolves the language the caller should be answered in.
func Language(preferred string) locale.Language {
	return locale.Resolve(preferred)
}

// Register validates req and persists it.
func (s *Service) Register(ctx context.Context, req Request) (model.Registration, error) {
	req.normalize()
	if err := s.check(req); err != nil {
		return model.Registration{}, err
	}

	conceived, _ := parseDate(req.ConceiveDate)
	r := model.Registration{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Age:               int(req.Age),
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		District:          req.District,
		State:             req.State,
		ConceiveDate:      conceived,
		AdditionalInfo:    req.AdditionalInfo,
		PreferredLanguage: req.PreferredLanguage,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.store.Save(ctx, r); err != nil {
		return model.Registration{}, fmt.Errorf("save registration: %w", err)
	}
	return r, nil
}

// List returns all registrations.
func (s *Service) List(ctx context.Context) ([]model.Registration, error) {
	return s.store.List(ctx)
}

// Get returns one registration.
func (s *Service) Get(ctx context.Context, id string) (model.Registration, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) check(req Request) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	lang := Language(req.PreferredLanguage)
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg := fieldMessages[fe.Field()][lang]
		if msg == "" {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
