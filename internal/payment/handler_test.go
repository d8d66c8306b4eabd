package payment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalerrors "github.com/frahmantamala/checkout-payments/internal"
	"github.com/frahmantamala/checkout-payments/internal/core/datamodel/payment"
	paymentPkg "github.com/frahmantamala/checkout-payments/internal/payment"
)

type mockPaymentService struct {
	createIntentError  error
	recordResultError  error
	getAllError        error
	createIntentResult *paymentPkg.CreateIntentResponse
	payments           []*payment.Payment
}

func (m *mockPaymentService) CreateIntent(ctx context.Context, req *paymentPkg.CreateIntentRequest) (*paymentPkg.CreateIntentResponse, error) {
	if m.createIntentError != nil {
		return nil, m.createIntentError
	}
	return m.createIntentResult, nil
}

func (m *mockPaymentService) RecordResult(req *paymentPkg.RecordResultRequest) error {
	return m.recordResultError
}

func (m *mockPaymentService) GetAllPayments() ([]*payment.Payment, error) {
	if m.getAllError != nil {
		return nil, m.getAllError
	}
	return m.payments, nil
}

var _ = Describe("Payment Handler", func() {
	var (
		handler *paymentPkg.Handler
		service *mockPaymentService
	)

	BeforeEach(func() {
		service = &mockPaymentService{
			createIntentResult: &paymentPkg.CreateIntentResponse{
				ClientSecret:    "pi_123_secret_abc",
				PaymentIntentID: "pi_123",
				PaymentID:       "0b6cb9b1-7db4-4b59-9c0a-111111111111",
			},
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = paymentPkg.NewHandler(service, logger)
	})

	Describe("CreateIntent", func() {
		It("should return the client secret and identifiers on success", func() {
			body, _ := json.Marshal(paymentPkg.CreateIntentRequest{
				OrderID:     "ord-1",
				AmountCents: 500,
				Currency:    "usd",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/payments/create-intent", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CreateIntent(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp paymentPkg.CreateIntentResponse
			Expect(json.NewDecoder(rec.Body).Decode(&resp)).To(Succeed())
			Expect(resp.ClientSecret).To(Equal("pi_123_secret_abc"))
			Expect(resp.PaymentIntentID).To(Equal("pi_123"))
		})

		It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/payments/create-intent", bytes.NewReader([]byte("{not json")))
			rec := httptest.NewRecorder()

			handler.CreateIntent(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map validation errors to 400", func() {
			service.createIntentError = internalerrors.NewValidationError("Validation failed", internalerrors.ErrCodeValidationFailed)

			body, _ := json.Marshal(paymentPkg.CreateIntentRequest{OrderID: "ord-1"})
			req := httptest.NewRequest(http.MethodPost, "/api/payments/create-intent", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CreateIntent(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map processor failures to 502", func() {
			service.createIntentError = internalerrors.NewExternalError("payment processor request failed", internalerrors.ErrCodeProcessorFailure, nil)

			body, _ := json.Marshal(paymentPkg.CreateIntentRequest{
				OrderID:     "ord-1",
				AmountCents: 500,
				Currency:    "usd",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/payments/create-intent", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CreateIntent(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("RecordResult", func() {
		It("should acknowledge a recorded result", func() {
			body, _ := json.Marshal(paymentPkg.RecordResultRequest{
				PaymentIntentID: "pi_123",
				Status:          "succeeded",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/payments/record-result", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.RecordResult(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp paymentPkg.RecordResultResponse
			Expect(json.NewDecoder(rec.Body).Decode(&resp)).To(Succeed())
			Expect(resp.OK).To(BeTrue())
		})

		It("should return 404 when the intent is unknown", func() {
			service.recordResultError = internalerrors.ErrPaymentNotFound

			body, _ := json.Marshal(paymentPkg.RecordResultRequest{
				PaymentIntentID: "pi_999",
				Status:          "succeeded",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/payments/record-result", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.RecordResult(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for an unrecognized status", func() {
			service.recordResultError = internalerrors.ErrUnknownPaymentStatus

			body, _ := json.Marshal(paymentPkg.RecordResultRequest{
				PaymentIntentID: "pi_123",
				Status:          "archived",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/payments/record-result", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.RecordResult(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GetAllPayments", func() {
		It("should return the full history as JSON", func() {
			intentID := "pi_123"
			service.payments = []*payment.Payment{
				{
					OrderID:         "ord-1",
					PaymentIntentID: &intentID,
					AmountCents:     500,
					Currency:        "usd",
					Status:          payment.StatusSucceeded,
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/get-all-payments", nil)
			rec := httptest.NewRecorder()

			handler.GetAllPayments(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var listed []payment.Payment
			Expect(json.NewDecoder(rec.Body).Decode(&listed)).To(Succeed())
			Expect(listed).To(HaveLen(1))
			Expect(listed[0].OrderID).To(Equal("ord-1"))
		})

		It("should return an empty array when the store is empty", func() {
			req := httptest.NewRequest(http.MethodGet, "/get-all-payments", nil)
			rec := httptest.NewRecorder()

			handler.GetAllPayments(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON("[]"))
		})

		It("should hide store errors behind a generic plain-text 500", func() {
			service.getAllError = internalerrors.NewInternalError("boom", nil)

			req := httptest.NewRequest(http.MethodGet, "/get-all-payments", nil)
			rec := httptest.NewRecorder()

			handler.GetAllPayments(rec, req)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("text/plain"))
			Expect(rec.Body.String()).To(Equal("unable to process your request."))
		})
	})
})
