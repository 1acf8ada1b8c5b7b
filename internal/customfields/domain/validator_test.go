package domain_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"memberhub-server/internal/customfields/domain"
)

var _ = Describe("ValidateFieldValue", func() {
	field := func(fieldType domain.FieldType, required bool, options string) domain.FieldDefinition {
		return domain.FieldDefinition{
			ID:           "f1",
			FieldType:    fieldType,
			IsRequired:   required,
			FieldOptions: options,
		}
	}

	Context("required handling", func() {
		It("rejects an absent required field", func() {
			reason := domain.ValidateFieldValue(field(domain.FieldTypeText, true, ""), "", false)
			Expect(reason).To(Equal("required"))
		})

		It("rejects an empty required field", func() {
			reason := domain.ValidateFieldValue(field(domain.FieldTypeText, true, ""), "   ", true)
			Expect(reason).To(Equal("required"))
		})

		It("accepts an absent optional field without running the type check", func() {
			reason := domain.ValidateFieldValue(field(domain.FieldTypeEmail, false, ""), "", false)
			Expect(reason).To(BeEmpty())
		})

		It("checks required before the type validator", func() {
			reason := domain.ValidateFieldValue(field(domain.FieldTypeInteger, true, ""), "", true)
			Expect(reason).To(Equal("required"))
		})
	})

	Context("text fields", func() {
		It("accepts any non-empty value", func() {
			reason := domain.ValidateFieldValue(field(domain.FieldTypeText, true, ""), "anything at all", true)
			Expect(reason).To(BeEmpty())
		})
	})

	Context("email fields", func() {
		It("accepts a well-formed address", func() {
			reason := domain.ValidateFieldValue(field(domain.FieldTypeEmail, false, ""), "member@example.org", true)
			Expect(reason).To(BeEmpty())
		})

		It("rejects a malformed address", func() {
			reason := domain.ValidateFieldValue(field(domain.FieldTypeEmail, false, ""), "not-an-email", true)
			Expect(reason).To(Equal("must be a valid email address"))
		})
	})

	Context("url fields", func() {
		It("accepts http and https urls", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeURL, false, ""), "https://example.org/profile", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeURL, false, ""), "http://example.org", true)).To(BeEmpty())
		})

		It("rejects values without a scheme or host", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeURL, false, ""), "example.org", true)).To(Equal("must be a valid URL"))
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeURL, false, ""), "ftp://example.org", true)).To(Equal("must be a valid URL"))
		})
	})

	Context("numeric fields", func() {
		It("accepts whole numbers for integer fields", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeInteger, false, ""), "42", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeInteger, false, ""), "-7", true)).To(BeEmpty())
		})

		It("rejects fractions for integer fields", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeInteger, false, ""), "4.2", true)).To(Equal("must be a whole number"))
		})

		It("accepts decimals for decimal fields", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDecimal, false, ""), "4.2", true)).To(BeEmpty())
		})

		It("rejects non-numeric values for decimal fields", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDecimal, false, ""), "four", true)).To(Equal("must be a number"))
		})
	})

	Context("year of birth fields", func() {
		It("accepts any numeric year without range checking", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeYearOfBirth, false, ""), "1990", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeYearOfBirth, false, ""), "1850", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeYearOfBirth, false, ""), "3000", true)).To(BeEmpty())
		})

		It("rejects non-numeric values", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeYearOfBirth, false, ""), "soon", true)).To(Equal("must be a number"))
		})
	})

	Context("boolean fields", func() {
		It("accepts true and false in any casing", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "true", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "false", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "TRUE", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "tRuE", true)).To(BeEmpty())
		})

		It("rejects anything else, including numeric forms", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "yes", true)).To(Equal("must be true or false"))
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "1", true)).To(Equal("must be true or false"))
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "0", true)).To(Equal("must be true or false"))
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeBoolean, false, ""), "t", true)).To(Equal("must be true or false"))
		})
	})

	Context("date and date/time fields", func() {
		It("accepts a date in 2006-01-02 format", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDate, false, ""), "2026-03-15", true)).To(BeEmpty())
		})

		It("rejects other date formats", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDate, false, ""), "15/03/2026", true)).To(Equal("must be a date in format 2006-01-02"))
		})

		It("accepts a full date/time", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDateTime, false, ""), "2026-03-15 14:30:00", true)).To(BeEmpty())
		})

		It("accepts a bare date for date/time fields", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDateTime, false, ""), "2026-03-15", true)).To(BeEmpty())
		})

		It("rejects malformed date/times", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDateTime, false, ""), "yesterday", true)).To(Equal("must be a date/time in format 2006-01-02 15:04:05"))
		})
	})

	Context("phone number fields", func() {
		It("accepts any non-empty value, like text fields", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypePhoneNumber, false, ""), "+31 6 1234 5678", true)).To(BeEmpty())
			Expect(domain.ValidateFieldValue(field(domain.FieldTypePhoneNumber, false, ""), "call me", true)).To(BeEmpty())
		})

		It("rejects an empty value when required", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypePhoneNumber, true, ""), "", true)).To(Equal("required"))
		})
	})

	Context("dropdown fields", func() {
		It("accepts a value from the option list", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDropdown, false, "A,B,C"), "B", true)).To(BeEmpty())
		})

		It("accepts a value that matches after trimming", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDropdown, false, "A, B ,C"), " B ", true)).To(BeEmpty())
		})

		It("rejects a value outside the option list", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeDropdown, false, "A,B,C"), "D", true)).To(Equal("invalid option"))
		})
	})

	Context("multiple choice fields", func() {
		It("accepts a delimited list of valid selections", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeMultipleChoice, false, "A,B,C"), "A, C", true)).To(BeEmpty())
		})

		It("rejects when any selection is invalid", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeMultipleChoice, false, "A,B,C"), "A, D", true)).To(Equal("invalid option"))
		})

		It("accepts an empty selection when not required", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeMultipleChoice, false, "A,B,C"), "", true)).To(BeEmpty())
		})

		It("rejects an empty selection when required", func() {
			Expect(domain.ValidateFieldValue(field(domain.FieldTypeMultipleChoice, true, "A,B,C"), "", true)).To(Equal("required"))
		})
	})
})
