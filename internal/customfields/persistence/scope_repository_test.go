package persistence_test

import (
	"context"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/persistence"
	"memberhub-server/internal/customfields/persistence/internal"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ScopeRepository", func() {
	var (
		orm  sql.ORM
		repo usecases.ScopeRepository
		ctx  context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = persistence.NewScopeRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()

		gomega.Expect(orm.Create(&internal.Group{ID: "group-1", Name: "Hanoi Alumni"}).Error()).To(gomega.Succeed())
		gomega.Expect(orm.Create(&internal.Event{ID: "event-1", Name: "Annual Gala"}).Error()).To(gomega.Succeed())
		gomega.Expect(orm.Create(&internal.GroupApplication{ID: "application-1", GroupID: "group-1"}).Error()).To(gomega.Succeed())
		gomega.Expect(orm.Create(&internal.EventRegistration{ID: "registration-1", EventID: "event-1"}).Error()).To(gomega.Succeed())
	})

	ginkgo.Context("ScopeExists", func() {
		ginkgo.It("finds a group for membership forms", func() {
			exists, err := repo.ScopeExists(ctx, domain.EntityTypeGroupMembership, "group-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())
		})

		ginkgo.It("finds an event for registration forms", func() {
			exists, err := repo.ScopeExists(ctx, domain.EntityTypeEventRegistration, "event-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())
		})

		ginkgo.It("does not mix entity types", func() {
			exists, err := repo.ScopeExists(ctx, domain.EntityTypeEventRegistration, "group-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeFalse())
		})

		ginkgo.When("the entity type is unsupported", func() {
			ginkgo.It("returns an error", func() {
				_, err := repo.ScopeExists(ctx, domain.EntityType("Membership"), "group-1")
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Context("InstanceExists", func() {
		ginkgo.It("finds a group application", func() {
			exists, err := repo.InstanceExists(ctx, domain.EntityTypeGroupMembership, "application-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())
		})

		ginkgo.It("finds an event registration", func() {
			exists, err := repo.InstanceExists(ctx, domain.EntityTypeEventRegistration, "registration-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())
		})

		ginkgo.It("reports a missing instance", func() {
			exists, err := repo.InstanceExists(ctx, domain.EntityTypeGroupMembership, "application-unknown")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeFalse())
		})
	})
})
