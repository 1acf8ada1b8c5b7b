package usecases_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/usecases"
	shareddomain "memberhub-server/internal/shared_kernel/domain"
)

var _ = Describe("SimpleFieldTabService", func() {
	var (
		fieldRepository *fakeFieldDefinitionRepository
		tabRepository   *fakeFieldTabRepository
		service         usecases.FieldTabService
	)

	entityType := domain.EntityTypeGroupMembership
	entityID := "group-7"
	tabID := shareddomain.ID("tab-1")

	BeforeEach(func() {
		fieldRepository = newFakeFieldDefinitionRepository()
		tabRepository = newFakeFieldTabRepository()
		tabRepository.fields = fieldRepository
		service = usecases.NewFieldTabService(tabRepository)

		tabRepository.tabs["tab-1"] = domain.FieldTab{
			ID:         tabID,
			EntityType: entityType,
			EntityID:   entityID,
			TabName:    "Personal details",
		}
		tabRepository.order = []string{"tab-1"}

		fieldRepository.fields["f1"] = domain.FieldDefinition{
			ID:         "f1",
			EntityType: entityType,
			EntityID:   entityID,
			FieldName:  "Full name",
			FieldType:  domain.FieldTypeText,
			TabID:      &tabID,
		}
		fieldRepository.order = []string{"f1"}
	})

	Context("Delete", func() {
		It("removes the tab and leaves its fields detached", func() {
			err := service.Delete(context.Background(), tabID)

			Expect(err).NotTo(HaveOccurred())
			Expect(tabRepository.tabs).NotTo(HaveKey("tab-1"))
			Expect(fieldRepository.fields["f1"].TabID).To(BeNil())
		})

		It("returns ErrFieldTabNotFound for an unknown tab", func() {
			err := service.Delete(context.Background(), "missing-tab")
			Expect(err).To(MatchError(usecases.ErrFieldTabNotFound))
			Expect(tabRepository.tabs).To(HaveKey("tab-1"))
		})
	})

	Context("Update", func() {
		It("updates an existing tab", func() {
			updated := tabRepository.tabs["tab-1"]
			updated.TabName = "Contact details"

			err := service.Update(context.Background(), updated)

			Expect(err).NotTo(HaveOccurred())
			Expect(tabRepository.tabs["tab-1"].TabName).To(Equal("Contact details"))
		})
	})
})

var _ = Describe("SimpleFieldDefinitionService", func() {
	var (
		fieldRepository *fakeFieldDefinitionRepository
		tabRepository   *fakeFieldTabRepository
		service         usecases.FieldDefinitionService
	)

	entityType := domain.EntityTypeGroupMembership
	entityID := "group-7"
	tabID := shareddomain.ID("tab-1")

	BeforeEach(func() {
		fieldRepository = newFakeFieldDefinitionRepository()
		tabRepository = newFakeFieldTabRepository()
		service = usecases.NewFieldDefinitionService(fieldRepository, tabRepository)

		tabRepository.tabs["tab-1"] = domain.FieldTab{
			ID:         tabID,
			EntityType: entityType,
			EntityID:   entityID,
			TabName:    "Personal details",
		}
		tabRepository.order = []string{"tab-1"}
	})

	Context("Create", func() {
		It("stores a field without a tab", func() {
			field, _ := domain.NewFieldDefinitionBuilder().
				WithEntityType(entityType).
				WithEntityID(entityID).
				WithFieldName("Full name").
				WithFieldType(domain.FieldTypeText).
				Build()

			err := service.Create(context.Background(), field)

			Expect(err).NotTo(HaveOccurred())
			Expect(fieldRepository.fields).To(HaveKey(field.ID.String()))
		})

		It("rejects a tab reference from another scope", func() {
			field, _ := domain.NewFieldDefinitionBuilder().
				WithEntityType(domain.EntityTypeEventRegistration).
				WithEntityID("event-3").
				WithFieldName("Full name").
				WithFieldType(domain.FieldTypeText).
				WithTabID(&tabID).
				Build()

			err := service.Create(context.Background(), field)

			Expect(err).To(MatchError(usecases.ErrFieldTabNotFound))
		})

		It("rejects a dangling tab reference", func() {
			missing := shareddomain.ID("missing-tab")
			field, _ := domain.NewFieldDefinitionBuilder().
				WithEntityType(entityType).
				WithEntityID(entityID).
				WithFieldName("Full name").
				WithFieldType(domain.FieldTypeText).
				WithTabID(&missing).
				Build()

			err := service.Create(context.Background(), field)

			Expect(err).To(MatchError(usecases.ErrFieldTabNotFound))
		})
	})

	Context("Get", func() {
		It("returns ErrFieldDefinitionNotFound for an unknown id", func() {
			_, err := service.Get(context.Background(), "missing-field")
			Expect(err).To(MatchError(usecases.ErrFieldDefinitionNotFound))
		})
	})

	Context("Update", func() {
		It("rejects an update that strips the options of a dropdown", func() {
			fieldRepository.fields["f1"] = domain.FieldDefinition{
				ID:           "f1",
				EntityType:   entityType,
				EntityID:     entityID,
				FieldName:    "T-shirt size",
				FieldType:    domain.FieldTypeDropdown,
				FieldOptions: "S,M,L",
			}
			fieldRepository.order = []string{"f1"}

			updated := fieldRepository.fields["f1"]
			updated.FieldOptions = ""

			err := service.Update(context.Background(), updated)

			Expect(err).To(MatchError(usecases.ErrInvalidFieldDefinition))
			Expect(fieldRepository.fields["f1"].FieldOptions).To(Equal("S,M,L"))
		})

		It("rejects turning a text field into a dropdown without options", func() {
			fieldRepository.fields["f1"] = domain.FieldDefinition{
				ID:         "f1",
				EntityType: entityType,
				EntityID:   entityID,
				FieldName:  "Notes",
				FieldType:  domain.FieldTypeText,
			}
			fieldRepository.order = []string{"f1"}

			updated := fieldRepository.fields["f1"]
			updated.FieldType = domain.FieldTypeMultipleChoice

			err := service.Update(context.Background(), updated)

			Expect(err).To(MatchError(usecases.ErrInvalidFieldDefinition))
		})
	})

	Context("Delete", func() {
		It("removes an existing field", func() {
			fieldRepository.fields["f1"] = domain.FieldDefinition{
				ID:         "f1",
				EntityType: entityType,
				EntityID:   entityID,
				FieldName:  "Full name",
				FieldType:  domain.FieldTypeText,
			}

			err := service.Delete(context.Background(), "f1")

			Expect(err).NotTo(HaveOccurred())
			Expect(fieldRepository.fields).NotTo(HaveKey("f1"))
		})
	})
})
