package sql_test

import (
	"context"
	"errors"
	"time"

	"memberhub-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type ormTestModel struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&ormTestModel{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("First", func() {
		ginkgo.When("no row matches", func() {
			ginkgo.It("should translate the gorm error to ErrRecordNotFound", func() {
				var row ormTestModel
				err := orm.WithContext(ctx).First(&row, "id = ?", 42).Error()
				gomega.Expect(errors.Is(err, sql.ErrRecordNotFound)).To(gomega.BeTrue())
			})
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.When("the callback returns an error", func() {
			ginkgo.It("should roll back every write", func() {
				err := orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
					if err := tx.Create(&ormTestModel{Name: "first"}).Error(); err != nil {
						return err
					}
					if err := tx.Create(&ormTestModel{Name: "second"}).Error(); err != nil {
						return err
					}
					return errors.New("boom")
				})
				gomega.Expect(err).To(gomega.HaveOccurred())

				var count int64
				gomega.Expect(orm.WithContext(ctx).Model(&ormTestModel{}).Count(&count).Error()).To(gomega.Succeed())
				gomega.Expect(count).To(gomega.Equal(int64(0)))
			})
		})

		ginkgo.When("the callback succeeds", func() {
			ginkgo.It("should commit every write", func() {
				err := orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
					return tx.Create(&ormTestModel{Name: "kept"}).Error()
				})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				var count int64
				gomega.Expect(orm.WithContext(ctx).Model(&ormTestModel{}).Count(&count).Error()).To(gomega.Succeed())
				gomega.Expect(count).To(gomega.Equal(int64(1)))
			})
		})
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.It("should complete operations within the timeout", func() {
			var count int64
			err := orm.WithTimeout(ctx, 5*time.Second).Model(&ormTestModel{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})
})
