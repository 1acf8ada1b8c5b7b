package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"memberhub-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	entityType   string
	entityID     string
	instanceID   string
	fieldIDs     map[string]string
	tabID        string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Custom field catalog steps
	ctx.Given(`^a group membership form for group "([^"]*)"$`, fc.aGroupMembershipFormForGroup)
	ctx.Given(`^a tab named "([^"]*)"$`, fc.aTabNamed)
	ctx.Given(`^a required text field named "([^"]*)"$`, fc.aRequiredTextFieldNamed)
	ctx.Given(`^a dropdown field named "([^"]*)" with options "([^"]*)"$`, fc.aDropdownFieldNamedWithOptions)

	// Form structure steps
	ctx.When(`^I get the form structure$`, fc.iGetTheFormStructure)
	ctx.Then(`^the structure should contain the tab "([^"]*)"$`, fc.theStructureShouldContainTheTab)
	ctx.Then(`^the structure should contain (\d+) flat fields?$`, fc.theStructureShouldContainFlatFields)

	// Validation steps
	ctx.When(`^I validate the values:$`, fc.iValidateTheValues)
	ctx.Then(`^the validation should pass$`, fc.theValidationShouldPass)
	ctx.Then(`^the validation should reject "([^"]*)" with "([^"]*)"$`, fc.theValidationShouldReject)

	// Submission steps
	ctx.When(`^I submit the values for instance "([^"]*)":$`, fc.iSubmitTheValuesForInstance)
	ctx.Then(`^the submission should succeed$`, fc.theSubmissionShouldSucceed)
	ctx.Then(`^the submission should fail with "([^"]*)" rejected as "([^"]*)"$`, fc.theSubmissionShouldFailWithRejectedAs)
	ctx.When(`^I get the submitted values$`, fc.iGetTheSubmittedValues)
	ctx.Then(`^the submitted value of "([^"]*)" should be "([^"]*)"$`, fc.theSubmittedValueOfShouldBe)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.entityType = ""
	fc.entityID = ""
	fc.instanceID = ""
	fc.fieldIDs = make(map[string]string)
	fc.tabID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}
