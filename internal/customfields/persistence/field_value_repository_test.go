package persistence_test

import (
	"context"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/persistence"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/pubsub"
	"memberhub-server/internal/infra/sql"
	shareddomain "memberhub-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("FieldValueRepository", func() {
	var (
		orm     sql.ORM
		factory pubsub.PublisherFactory
		repo    usecases.FieldValueRepository
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		factory = pubsub.NewMemoryPublisherFactory()

		repo, err = persistence.NewFieldValueRepository(factory, orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	newValue := func(fieldID shareddomain.ID, instanceID, content string) domain.FieldValue {
		value, err := domain.NewFieldValueBuilder().
			WithCustomFieldID(fieldID).
			WithEntityInstanceID(instanceID).
			WithFieldValue(content).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return value
	}

	ginkgo.Context("UpsertAll", func() {
		ginkgo.It("inserts new rows for an unseen natural key", func() {
			values := []domain.FieldValue{
				newValue("field-1", "application-1", "Nguyen Van A"),
				newValue("field-2", "application-1", "A"),
			}

			stored, err := repo.UpsertAll(ctx, values)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored).To(gomega.HaveLen(2))
			gomega.Expect(stored[0].Version).To(gomega.Equal(1))
		})

		ginkgo.When("a row already exists for the natural key", func() {
			ginkgo.It("updates in place and bumps the version", func() {
				first, err := repo.UpsertAll(ctx, []domain.FieldValue{
					newValue("field-1", "application-1", "Nguyen Van A"),
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				second, err := repo.UpsertAll(ctx, []domain.FieldValue{
					newValue("field-1", "application-1", "Tran Thi B"),
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(second).To(gomega.HaveLen(1))
				gomega.Expect(second[0].ID).To(gomega.Equal(first[0].ID))
				gomega.Expect(second[0].FieldValue).To(gomega.Equal("Tran Thi B"))
				gomega.Expect(second[0].Version).To(gomega.Equal(2))

				all, err := repo.FindByInstance(ctx, "application-1")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(all).To(gomega.HaveLen(1))
			})
		})

		ginkgo.When("resubmitting the same content", func() {
			ginkgo.It("keeps a single row per field", func() {
				values := []domain.FieldValue{
					newValue("field-1", "application-1", "Nguyen Van A"),
				}

				_, err := repo.UpsertAll(ctx, values)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				_, err = repo.UpsertAll(ctx, []domain.FieldValue{
					newValue("field-1", "application-1", "Nguyen Van A"),
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				all, err := repo.FindByInstance(ctx, "application-1")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(all).To(gomega.HaveLen(1))
				gomega.Expect(all[0].FieldValue).To(gomega.Equal("Nguyen Van A"))
			})
		})
	})

	ginkgo.Context("FindByInstance", func() {
		ginkgo.It("scopes results to the requested instance", func() {
			_, err := repo.UpsertAll(ctx, []domain.FieldValue{
				newValue("field-1", "application-1", "Nguyen Van A"),
				newValue("field-1", "application-2", "Tran Thi B"),
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			values, err := repo.FindByInstance(ctx, "application-2")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(values).To(gomega.HaveLen(1))
			gomega.Expect(values[0].FieldValue).To(gomega.Equal("Tran Thi B"))
		})

		ginkgo.When("the instance has no values", func() {
			ginkgo.It("returns an empty slice", func() {
				values, err := repo.FindByInstance(ctx, "application-unknown")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(values).To(gomega.BeEmpty())
			})
		})
	})
})
