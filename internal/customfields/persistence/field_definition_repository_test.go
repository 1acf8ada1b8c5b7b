package persistence_test

import (
	"context"

	"memberhub-server/internal/customfields/domain"
	"memberhub-server/internal/customfields/persistence"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/pubsub"
	"memberhub-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("FieldDefinitionRepository", func() {
	var (
		orm     sql.ORM
		factory pubsub.PublisherFactory
		repo    usecases.FieldDefinitionRepository
		tabRepo usecases.FieldTabRepository
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		factory = pubsub.NewMemoryPublisherFactory()

		repo, err = persistence.NewFieldDefinitionRepository(factory, orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		tabRepo, err = persistence.NewFieldTabRepository(factory, orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	newField := func(name string, order int) domain.FieldDefinition {
		field, err := domain.NewFieldDefinitionBuilder().
			WithEntityType(domain.EntityTypeGroupMembership).
			WithEntityID("group-1").
			WithFieldName(name).
			WithFieldType(domain.FieldTypeText).
			WithDisplayOrder(order).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return field
	}

	ginkgo.Context("Create and Get", func() {
		ginkgo.It("stores a definition and reads it back", func() {
			field := newField("Full Name", 1)

			err := repo.Create(ctx, field)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			got, err := repo.Get(ctx, field.ID.String())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(got.FieldName).To(gomega.Equal("Full Name"))
			gomega.Expect(got.EntityType).To(gomega.Equal(domain.EntityTypeGroupMembership))
			gomega.Expect(got.Version).To(gomega.Equal(1))
		})

		ginkgo.When("the definition does not exist", func() {
			ginkgo.It("returns the not found sentinel", func() {
				_, err := repo.Get(ctx, "missing-id")
				gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldDefinitionNotFound))
			})
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("persists the new state", func() {
			field := newField("Full Name", 1)
			gomega.Expect(repo.Create(ctx, field)).To(gomega.Succeed())

			field.FieldName = "Legal Name"
			field.IsRequired = true
			field.Version = 2
			gomega.Expect(repo.Update(ctx, field)).To(gomega.Succeed())

			got, err := repo.Get(ctx, field.ID.String())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(got.FieldName).To(gomega.Equal("Legal Name"))
			gomega.Expect(got.IsRequired).To(gomega.BeTrue())
			gomega.Expect(got.Version).To(gomega.Equal(2))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("removes the definition", func() {
			field := newField("Full Name", 1)
			gomega.Expect(repo.Create(ctx, field)).To(gomega.Succeed())

			gomega.Expect(repo.Delete(ctx, field.ID.String())).To(gomega.Succeed())

			_, err := repo.Get(ctx, field.ID.String())
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldDefinitionNotFound))
		})
	})

	ginkgo.Context("FindByScope", func() {
		ginkgo.It("returns only the scope's definitions ordered by display order", func() {
			second := newField("Phone", 2)
			first := newField("Full Name", 1)

			other, err := domain.NewFieldDefinitionBuilder().
				WithEntityType(domain.EntityTypeEventRegistration).
				WithEntityID("event-1").
				WithFieldName("Dietary Requirements").
				WithFieldType(domain.FieldTypeLongText).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(repo.Create(ctx, second)).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, first)).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, other)).To(gomega.Succeed())

			fields, err := repo.FindByScope(ctx, domain.EntityTypeGroupMembership, "group-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fields).To(gomega.HaveLen(2))
			gomega.Expect(fields[0].FieldName).To(gomega.Equal("Full Name"))
			gomega.Expect(fields[1].FieldName).To(gomega.Equal("Phone"))
		})

		ginkgo.When("the scope has no definitions", func() {
			ginkgo.It("returns an empty slice", func() {
				fields, err := repo.FindByScope(ctx, domain.EntityTypeGroupMembership, "group-without-fields")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(fields).To(gomega.BeEmpty())
			})
		})
	})

	ginkgo.Context("deleting a tab", func() {
		ginkgo.It("clears the tab reference from every attached definition", func() {
			tab, err := domain.NewFieldTabBuilder().
				WithEntityType(domain.EntityTypeGroupMembership).
				WithEntityID("group-1").
				WithTabName("Personal Details").
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(tabRepo.Create(ctx, tab)).To(gomega.Succeed())

			attached := newField("Full Name", 1)
			attached.TabID = &tab.ID
			another := newField("Phone", 2)
			another.TabID = &tab.ID

			gomega.Expect(repo.Create(ctx, attached)).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, another)).To(gomega.Succeed())

			gomega.Expect(tabRepo.Delete(ctx, tab.ID.String())).To(gomega.Succeed())

			_, err = tabRepo.Get(ctx, tab.ID.String())
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldTabNotFound))

			for _, id := range []string{attached.ID.String(), another.ID.String()} {
				got, err := repo.Get(ctx, id)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(got.TabID).To(gomega.BeNil())
			}
		})
	})
})

var _ = ginkgo.Describe("FieldTabRepository", func() {
	var (
		orm     sql.ORM
		factory pubsub.PublisherFactory
		repo    usecases.FieldTabRepository
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		factory = pubsub.NewMemoryPublisherFactory()

		repo, err = persistence.NewFieldTabRepository(factory, orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
	})

	newTab := func(name string, order int) domain.FieldTab {
		tab, err := domain.NewFieldTabBuilder().
			WithEntityType(domain.EntityTypeEventRegistration).
			WithEntityID("event-1").
			WithTabName(name).
			WithDisplayOrder(order).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return tab
	}

	ginkgo.It("round trips a tab through create, update and delete", func() {
		tab := newTab("Logistics", 1)
		gomega.Expect(repo.Create(ctx, tab)).To(gomega.Succeed())

		got, err := repo.Get(ctx, tab.ID.String())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(got.TabName).To(gomega.Equal("Logistics"))

		tab.TabName = "Travel"
		tab.Version = 2
		gomega.Expect(repo.Update(ctx, tab)).To(gomega.Succeed())

		got, err = repo.Get(ctx, tab.ID.String())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(got.TabName).To(gomega.Equal("Travel"))
		gomega.Expect(got.Version).To(gomega.Equal(2))

		gomega.Expect(repo.Delete(ctx, tab.ID.String())).To(gomega.Succeed())

		_, err = repo.Get(ctx, tab.ID.String())
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrFieldTabNotFound))
	})

	ginkgo.It("lists a scope's tabs in display order", func() {
		gomega.Expect(repo.Create(ctx, newTab("Logistics", 2))).To(gomega.Succeed())
		gomega.Expect(repo.Create(ctx, newTab("Attendee", 1))).To(gomega.Succeed())

		tabs, err := repo.FindByScope(ctx, domain.EntityTypeEventRegistration, "event-1")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(tabs).To(gomega.HaveLen(2))
		gomega.Expect(tabs[0].TabName).To(gomega.Equal("Attendee"))
		gomega.Expect(tabs[1].TabName).To(gomega.Equal("Logistics"))
	})
})
