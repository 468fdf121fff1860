package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
	"github.com/allisson/paymentfields/internal/field/usecase"
	"github.com/allisson/paymentfields/internal/field/usecase/mocks"
)

func TestRunFormat(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("Success_Text", func(t *testing.T) {
		mockUseCase := mocks.NewMockFieldUseCase(t)
		rules := domain.Rules{Brand: domain.BrandUnknown, Country: "AU"}
		mockUseCase.On("Format", ctx, domain.KindBSB, "062000", rules).
			Return(domain.FormattedText{Text: "062-000"}, nil)

		var out bytes.Buffer
		err := RunFormat(ctx, mockUseCase, logger, &out, "bsb", "062000", "", "au", "text")
		require.NoError(t, err)
		assert.Equal(t, "Formatted: 062-000\n", out.String())
	})

	t.Run("Success_JSON", func(t *testing.T) {
		mockUseCase := mocks.NewMockFieldUseCase(t)
		mockUseCase.On("Format", ctx, domain.KindExpiry, "1230", mock.AnythingOfType("domain.Rules")).
			Return(domain.FormattedText{Text: "12/30"}, nil)

		var out bytes.Buffer
		err := RunFormat(ctx, mockUseCase, logger, &out, "expiry", "1230", "", "", "json")
		require.NoError(t, err)

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, "expiry", result["kind"])
		assert.Equal(t, "12/30", result["formatted"])
		assert.NotContains(t, result, "state")
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		mockUseCase := mocks.NewMockFieldUseCase(t)
		mockUseCase.On("Format", ctx, domain.KindCVC, "12", mock.AnythingOfType("domain.Rules")).
			Return(domain.FormattedText{}, errors.New("boom"))

		var out bytes.Buffer
		err := RunFormat(ctx, mockUseCase, logger, &out, "cvc", "12", "", "", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to format cvc")
		assert.Empty(t, out.String())
	})

	t.Run("Error_InvalidInputs", func(t *testing.T) {
		tests := []struct {
			name    string
			kind    string
			brand   string
			country string
			format  string
			message string
		}{
			{name: "unknown kind", kind: "iban", format: "text", message: "invalid field kind"},
			{name: "missing kind", kind: "", format: "text", message: "invalid field kind"},
			{name: "unknown brand", kind: "cvc", brand: "maestro", format: "text", message: "invalid brand"},
			{name: "bad country", kind: "phone", country: "USA", format: "text", message: "invalid country"},
			{name: "bad format", kind: "cvc", format: "yaml", message: "invalid output format"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := RunFormat(ctx, nil, logger, nil, tt.kind, "1", tt.brand, tt.country, tt.format)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.message)
			})
		}
	})
}

func TestRunValidate(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("Success_TextWithMock", func(t *testing.T) {
		mockUseCase := mocks.NewMockFieldUseCase(t)
		rules := domain.Rules{Brand: domain.BrandVisa}
		mockUseCase.On("Format", ctx, domain.KindCVC, "1234", rules).
			Return(domain.FormattedText{Text: "1234"}, nil)
		mockUseCase.On("Validate", ctx, domain.KindCVC, "1234", rules).
			Return(domain.Invalid(domain.ReasonTooLong), nil)

		var out bytes.Buffer
		err := RunValidate(ctx, mockUseCase, logger, &out, "cvc", "1234", "visa", "", "text")
		require.NoError(t, err)
		assert.Equal(t, "Formatted: 1234\nState: invalid(too_long)\n", out.String())
	})

	t.Run("Success_JSONWithEngine", func(t *testing.T) {
		useCase := usecase.NewFieldUseCase(metadata.Default(), "US")

		var out bytes.Buffer
		err := RunValidate(ctx, useCase, logger, &out, "card_number", "4242424242424242", "", "", "json")
		require.NoError(t, err)

		var result FieldOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, domain.KindCardNumber, result.Kind)
		assert.Equal(t, "4242 4242 4242 4242", result.Formatted)
		assert.Equal(t, domain.StatusValid, result.State.Status)
	})

	t.Run("Error_ValidateFails", func(t *testing.T) {
		mockUseCase := mocks.NewMockFieldUseCase(t)
		mockUseCase.On("Format", ctx, domain.KindPhone, "555", mock.AnythingOfType("domain.Rules")).
			Return(domain.FormattedText{Text: "555"}, nil)
		mockUseCase.On("Validate", ctx, domain.KindPhone, "555", mock.AnythingOfType("domain.Rules")).
			Return(domain.ValidationState{}, errors.New("boom"))

		err := RunValidate(ctx, mockUseCase, logger, &bytes.Buffer{}, "phone", "555", "", "", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to validate phone")
	})
}
