package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

func (fc *FeatureContext) aGroupMembershipFormForGroup(groupID string) error {
	fc.entityType = "GroupMembership"
	fc.entityID = groupID
	return nil
}

func (fc *FeatureContext) aTabNamed(tabName string) error {
	response, err := fc.apiDriver.CreateFieldTab(map[string]any{
		"entity_type":   fc.entityType,
		"entity_id":     fc.entityID,
		"tab_name":      tabName,
		"display_order": 1,
	})
	if err != nil {
		return fmt.Errorf("creating tab: %w", err)
	}
	defer response.Body.Close()

	fc.require.Equal(http.StatusCreated, response.StatusCode, "Unexpected status code creating tab")

	var data map[string]any
	if err := fc.decodeBody(response.Body, &data); err != nil {
		return fmt.Errorf("decoding tab response: %w", err)
	}
	fc.tabID, _ = data["id"].(string)

	return nil
}

func (fc *FeatureContext) aRequiredTextFieldNamed(fieldName string) error {
	body := map[string]any{
		"entity_type":   fc.entityType,
		"entity_id":     fc.entityID,
		"field_name":    fieldName,
		"field_type":    "text",
		"is_required":   true,
		"display_order": len(fc.fieldIDs) + 1,
	}
	if fc.tabID != "" {
		body["tab_id"] = fc.tabID
	}

	return fc.createField(fieldName, body)
}

func (fc *FeatureContext) aDropdownFieldNamedWithOptions(fieldName, options string) error {
	body := map[string]any{
		"entity_type":   fc.entityType,
		"entity_id":     fc.entityID,
		"field_name":    fieldName,
		"field_type":    "dropdown",
		"field_options": options,
		"display_order": len(fc.fieldIDs) + 1,
	}
	if fc.tabID != "" {
		body["tab_id"] = fc.tabID
	}

	return fc.createField(fieldName, body)
}

func (fc *FeatureContext) createField(fieldName string, body map[string]any) error {
	response, err := fc.apiDriver.CreateFieldDefinition(body)
	if err != nil {
		return fmt.Errorf("creating field definition: %w", err)
	}
	defer response.Body.Close()

	fc.require.Equal(http.StatusCreated, response.StatusCode, "Unexpected status code creating field")

	var data map[string]any
	if err := fc.decodeBody(response.Body, &data); err != nil {
		return fmt.Errorf("decoding field response: %w", err)
	}
	id, _ := data["id"].(string)
	fc.fieldIDs[fieldName] = id

	return nil
}

func (fc *FeatureContext) iGetTheFormStructure() error {
	response, err := fc.apiDriver.GetFormStructure(fc.entityType, fc.entityID)
	if err != nil {
		return fmt.Errorf("getting form structure: %w", err)
	}

	fc.response = response
	return fc.decodeBody(response.Body, &fc.responseData)
}

func (fc *FeatureContext) theStructureShouldContainTheTab(tabName string) error {
	tabs, ok := fc.responseData["tabs"].([]any)
	fc.require.True(ok, "Response has no tabs")

	for _, rawTab := range tabs {
		tab, ok := rawTab.(map[string]any)
		if !ok {
			continue
		}
		info, ok := tab["tab"].(map[string]any)
		if ok && info["tab_name"] == tabName {
			return nil
		}
	}

	return fmt.Errorf("tab %q not found in structure", tabName)
}

func (fc *FeatureContext) theStructureShouldContainFlatFields(count int) error {
	fields, ok := fc.responseData["flat_fields"].([]any)
	fc.require.True(ok, "Response has no flat_fields")
	fc.require.Len(fields, count, "Unexpected flat field count")
	return nil
}

func (fc *FeatureContext) iValidateTheValues(table *godog.Table) error {
	response, err := fc.apiDriver.ValidateValues(fc.entityType, fc.entityID, fc.tableToValues(table))
	if err != nil {
		return fmt.Errorf("validating values: %w", err)
	}

	fc.response = response
	return fc.decodeBody(response.Body, &fc.responseData)
}

func (fc *FeatureContext) theValidationShouldPass() error {
	isValid, _ := fc.responseData["is_valid"].(bool)
	fc.require.True(isValid, "Validation did not pass: %v", fc.responseData["errors"])
	return nil
}

func (fc *FeatureContext) theValidationShouldReject(fieldID, reason string) error {
	isValid, _ := fc.responseData["is_valid"].(bool)
	fc.require.False(isValid, "Validation unexpectedly passed")

	return fc.assertErrorReason(fieldID, reason)
}

func (fc *FeatureContext) iSubmitTheValuesForInstance(instanceID string, table *godog.Table) error {
	fc.instanceID = instanceID

	response, err := fc.apiDriver.SubmitValues(fc.entityType, fc.entityID, instanceID, fc.tableToValues(table))
	if err != nil {
		return fmt.Errorf("submitting values: %w", err)
	}

	fc.response = response
	return fc.decodeBody(response.Body, &fc.responseData)
}

func (fc *FeatureContext) theSubmissionShouldSucceed() error {
	fc.require.Equal(http.StatusOK, fc.response.StatusCode, "Unexpected status code")

	success, _ := fc.responseData["success"].(bool)
	fc.require.True(success, "Submission did not succeed: %v", fc.responseData["errors"])
	return nil
}

func (fc *FeatureContext) theSubmissionShouldFailWithRejectedAs(fieldID, reason string) error {
	fc.require.Equal(http.StatusUnprocessableEntity, fc.response.StatusCode, "Unexpected status code")

	return fc.assertErrorReason(fieldID, reason)
}

func (fc *FeatureContext) iGetTheSubmittedValues() error {
	response, err := fc.apiDriver.GetSubmittedValues(fc.entityType, fc.entityID, fc.instanceID)
	if err != nil {
		return fmt.Errorf("getting submitted values: %w", err)
	}

	fc.response = response
	return fc.decodeBody(response.Body, &fc.responseData)
}

func (fc *FeatureContext) theSubmittedValueOfShouldBe(fieldName, expected string) error {
	flatValues, ok := fc.responseData["flat_values"].([]any)
	fc.require.True(ok, "Response has no flat_values")

	for _, rawValue := range flatValues {
		value, ok := rawValue.(map[string]any)
		if !ok {
			continue
		}
		field, ok := value["field"].(map[string]any)
		if ok && field["field_name"] == fieldName {
			fc.require.Equal(expected, value["value"], "Unexpected submitted value")
			return nil
		}
	}

	return fmt.Errorf("field %q not found in submitted values", fieldName)
}

func (fc *FeatureContext) assertErrorReason(fieldID, reason string) error {
	errors, ok := fc.responseData["errors"].(map[string]any)
	fc.require.True(ok, "Response has no errors map")

	resolvedID, found := fc.fieldIDs[fieldID]
	if !found {
		resolvedID = fieldID
	}

	actual, found := errors[resolvedID]
	fc.require.True(found, "No error reported for field %q", fieldID)
	fc.require.Equal(reason, actual, "Unexpected rejection reason")
	return nil
}

// Tables reference fields by name for readability. Submitted values are
// keyed by field ID, so names are resolved through the fields created
// earlier in the scenario.
func (fc *FeatureContext) tableToValues(table *godog.Table) map[string]string {
	values := make(map[string]string)
	for _, row := range table.Rows {
		if len(row.Cells) < 2 {
			continue
		}
		key := row.Cells[0].Value
		if id, found := fc.fieldIDs[key]; found {
			key = id
		}
		values[key] = row.Cells[1].Value
	}
	return values
}
