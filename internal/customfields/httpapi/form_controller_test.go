package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/httpapi"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/cache"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
	mockusecases "memberhub-server/test/unit/doubles/customfields/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FormController", func() {
	var (
		ctrl           *gomock.Controller
		mockFormView   *mockusecases.MockFormViewService
		mockValidation *mockusecases.MockValidationService
		mockSubmission *mockusecases.MockSubmissionService
		controller     *httpapi.FormController
		router         *http.ServeMux
		recorder       *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockFormView = mockusecases.NewMockFormViewService(ctrl)
		mockValidation = mockusecases.NewMockValidationService(ctrl)
		mockSubmission = mockusecases.NewMockSubmissionService(ctrl)

		responseCache, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())

		controller = httpapi.NewFormController(mockFormView, mockValidation, mockSubmission, responseCache, time.Minute)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("getFormStructure", func() {
		When("the scope has a configured form", func() {
			It("returns the structure grouped by tab", func() {
				tabID := shareddomain.ID("tab-1")
				structure := domain.FormStructure{
					EntityType: domain.EntityTypeGroupMembership,
					EntityID:   "group-1",
					Tabs: []domain.FormTab{
						{
							Tab: domain.FieldTab{ID: tabID, TabName: "Personal Details", EntityType: domain.EntityTypeGroupMembership, EntityID: "group-1"},
							Fields: []domain.FieldDefinition{
								{ID: "field-1", FieldName: "Full Name", FieldType: domain.FieldTypeText, TabID: &tabID},
							},
						},
					},
					FlatFields: []domain.FieldDefinition{
						{ID: "field-2", FieldName: "Phone", FieldType: domain.FieldTypePhoneNumber},
					},
				}

				mockFormView.EXPECT().
					GetFormStructure(gomock.Any(), domain.EntityTypeGroupMembership, "group-1").
					Return(structure, nil)

				request := httptest.NewRequest("GET", "/v1/custom-fields/structure?entity_type=GroupMembership&entity_id=group-1", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["entity_type"]).To(Equal("GroupMembership"))
				Expect(response["tabs"]).To(HaveLen(1))
				Expect(response["flat_fields"]).To(HaveLen(1))
			})
		})

		When("the entity type is unknown", func() {
			It("returns bad request", func() {
				request := httptest.NewRequest("GET", "/v1/custom-fields/structure?entity_type=Membership&entity_id=group-1", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the entity id is missing", func() {
			It("returns bad request", func() {
				request := httptest.NewRequest("GET", "/v1/custom-fields/structure?entity_type=GroupMembership", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the scope entity does not exist", func() {
			It("returns not found", func() {
				mockFormView.EXPECT().
					GetFormStructure(gomock.Any(), domain.EntityTypeGroupMembership, "group-missing").
					Return(domain.FormStructure{}, usecases.ErrScopeNotFound)

				request := httptest.NewRequest("GET", "/v1/custom-fields/structure?entity_type=GroupMembership&entity_id=group-missing", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("validateValues", func() {
		When("the submission has invalid values", func() {
			It("returns the rejection reasons without failing the request", func() {
				mockValidation.EXPECT().
					Validate(gomock.Any(), domain.EntityTypeGroupMembership, "group-1", map[string]string{"field-1": ""}).
					Return(domain.ValidationResult{IsValid: false, Errors: map[string]string{"field-1": "required"}}, nil)

				body, _ := json.Marshal(map[string]any{
					"entity_type": "GroupMembership",
					"entity_id":   "group-1",
					"values":      map[string]string{"field-1": ""},
				})
				request := httptest.NewRequest("POST", "/v1/custom-fields/validate", bytes.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["is_valid"]).To(BeFalse())
				Expect(response["errors"]).To(HaveKeyWithValue("field-1", "required"))
			})
		})

		When("the body is not JSON", func() {
			It("returns bad request", func() {
				request := httptest.NewRequest("POST", "/v1/custom-fields/validate", bytes.NewReader([]byte("not json")))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("submitValues", func() {
		When("the submission passes validation", func() {
			It("returns the stored values", func() {
				result := usecases.SubmissionResult{
					Success: true,
					Values: []domain.FieldValue{
						{ID: "value-1", CustomFieldID: "field-1", EntityInstanceID: "application-1", FieldValue: "Nguyen Van A", Version: 1},
					},
				}
				mockSubmission.EXPECT().
					Submit(gomock.Any(), domain.EntityTypeGroupMembership, "group-1", "application-1", map[string]string{"field-1": "Nguyen Van A"}).
					Return(result, nil)

				body, _ := json.Marshal(map[string]any{
					"entity_type": "GroupMembership",
					"entity_id":   "group-1",
					"values":      map[string]string{"field-1": "Nguyen Van A"},
				})
				request := httptest.NewRequest("POST", "/v1/custom-fields/instances/application-1/values", bytes.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["success"]).To(BeTrue())
				Expect(response["values"]).To(HaveLen(1))
			})
		})

		When("the submission fails validation", func() {
			It("returns unprocessable entity with per-field reasons", func() {
				result := usecases.SubmissionResult{
					Success: false,
					Errors:  map[string]string{"field-2": "invalid option"},
				}
				mockSubmission.EXPECT().
					Submit(gomock.Any(), domain.EntityTypeGroupMembership, "group-1", "application-1", gomock.Any()).
					Return(result, nil)

				body, _ := json.Marshal(map[string]any{
					"entity_type": "GroupMembership",
					"entity_id":   "group-1",
					"values":      map[string]string{"field-2": "D"},
				})
				request := httptest.NewRequest("POST", "/v1/custom-fields/instances/application-1/values", bytes.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["success"]).To(BeFalse())
				Expect(response["errors"]).To(HaveKeyWithValue("field-2", "invalid option"))
			})
		})

		When("the entity instance does not exist", func() {
			It("returns not found", func() {
				mockSubmission.EXPECT().
					Submit(gomock.Any(), domain.EntityTypeGroupMembership, "group-1", "application-missing", gomock.Any()).
					Return(usecases.SubmissionResult{}, usecases.ErrEntityInstanceNotFound)

				body, _ := json.Marshal(map[string]any{
					"entity_type": "GroupMembership",
					"entity_id":   "group-1",
					"values":      map[string]string{},
				})
				request := httptest.NewRequest("POST", "/v1/custom-fields/instances/application-missing/values", bytes.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("getSubmittedValues", func() {
		When("the instance has stored values", func() {
			It("returns the composed view", func() {
				form := domain.SubmittedForm{
					EntityType:       domain.EntityTypeEventRegistration,
					EntityID:         "event-1",
					EntityInstanceID: "registration-1",
					FlatValues: []domain.SubmittedValue{
						{
							Field:    domain.FieldDefinition{ID: "field-1", FieldName: "Dietary Requirements", FieldType: domain.FieldTypeLongText},
							Value:    "vegetarian",
							HasValue: true,
						},
					},
				}
				mockFormView.EXPECT().
					GetSubmittedValues(gomock.Any(), domain.EntityTypeEventRegistration, "event-1", "registration-1").
					Return(form, nil)

				request := httptest.NewRequest("GET", "/v1/custom-fields/instances/registration-1/values?entity_type=EventRegistration&entity_id=event-1", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["entity_instance_id"]).To(Equal("registration-1"))
				Expect(response["flat_values"]).To(HaveLen(1))
			})
		})

		When("the instance does not exist", func() {
			It("returns not found", func() {
				mockFormView.EXPECT().
					GetSubmittedValues(gomock.Any(), domain.EntityTypeEventRegistration, "event-1", "registration-missing").
					Return(domain.SubmittedForm{}, usecases.ErrEntityInstanceNotFound)

				request := httptest.NewRequest("GET", "/v1/custom-fields/instances/registration-missing/values?entity_type=EventRegistration&entity_id=event-1", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
