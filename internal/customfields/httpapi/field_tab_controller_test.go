package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/httpapi"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/cache"
	"memberhub-server/internal/infra/httpserver"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
	mockusecases "memberhub-server/test/unit/doubles/customfields/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FieldTabController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockFieldTabService
		controller  *httpapi.FieldTabController
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockFieldTabService(ctrl)

		responseCache, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())

		controller = httpapi.NewFieldTabController(mockService, responseCache)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listFieldTabs", func() {
		It("returns the scope's tabs in a paginated envelope", func() {
			tabs := []domain.FieldTab{
				{ID: "tab-1", EntityType: domain.EntityTypeEventRegistration, EntityID: "event-1", TabName: "Attendee", DisplayOrder: 1},
				{ID: "tab-2", EntityType: domain.EntityTypeEventRegistration, EntityID: "event-1", TabName: "Logistics", DisplayOrder: 2},
			}
			mockService.EXPECT().
				FindByScope(gomock.Any(), domain.EntityTypeEventRegistration, "event-1").
				Return(tabs, nil)

			request := httptest.NewRequest("GET", "/v1/custom-fields/tabs?entity_type=EventRegistration&entity_id=event-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.Total).To(Equal(2))
		})

		When("the scope params are missing", func() {
			It("returns bad request", func() {
				request := httptest.NewRequest("GET", "/v1/custom-fields/tabs", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("createFieldTab", func() {
		When("the request is valid", func() {
			It("creates the tab", func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)

				body, _ := json.Marshal(map[string]any{
					"entity_type":   "EventRegistration",
					"entity_id":     "event-1",
					"tab_name":      "Logistics",
					"display_order": 2,
				})
				request := httptest.NewRequest("POST", "/v1/custom-fields/tabs", bytes.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["tab_name"]).To(Equal("Logistics"))
				Expect(response["id"]).NotTo(BeEmpty())
			})
		})

		When("the tab name is empty", func() {
			It("returns bad request", func() {
				body, _ := json.Marshal(map[string]any{
					"entity_type": "EventRegistration",
					"entity_id":   "event-1",
					"tab_name":    "",
				})
				request := httptest.NewRequest("POST", "/v1/custom-fields/tabs", bytes.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("updateFieldTab", func() {
		It("applies the changes", func() {
			existing := domain.FieldTab{ID: "tab-1", EntityType: domain.EntityTypeEventRegistration, EntityID: "event-1", TabName: "Logistics"}
			mockService.EXPECT().
				Get(gomock.Any(), shareddomain.ID("tab-1")).
				Return(existing, nil)
			mockService.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, tab domain.FieldTab) error {
					Expect(tab.TabName).To(Equal("Travel"))
					return nil
				})

			body, _ := json.Marshal(map[string]any{"tab_name": "Travel"})
			request := httptest.NewRequest("PUT", "/v1/custom-fields/tabs/tab-1", bytes.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("deleteFieldTab", func() {
		When("the tab exists", func() {
			It("deletes it and replies no content", func() {
				existing := domain.FieldTab{ID: "tab-1", EntityType: domain.EntityTypeEventRegistration, EntityID: "event-1", TabName: "Logistics"}
				mockService.EXPECT().
					Get(gomock.Any(), shareddomain.ID("tab-1")).
					Return(existing, nil)
				mockService.EXPECT().
					Delete(gomock.Any(), shareddomain.ID("tab-1")).
					Return(nil)

				request := httptest.NewRequest("DELETE", "/v1/custom-fields/tabs/tab-1", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
			})
		})

		When("the tab does not exist", func() {
			It("returns not found", func() {
				mockService.EXPECT().
					Get(gomock.Any(), shareddomain.ID("tab-missing")).
					Return(domain.FieldTab{}, usecases.ErrFieldTabNotFound)

				request := httptest.NewRequest("DELETE", "/v1/custom-fields/tabs/tab-missing", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
