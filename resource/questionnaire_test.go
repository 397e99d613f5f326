package resource

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pv "github.com/careproc/validator"
)

func questionnaireXML(items string) string {
	return fmt.Sprintf(`<Questionnaire xmlns="http://hl7.org/fhir">
  <meta>
    <profile value="%sform-template|#{version}"/>
    <tag><system value="%s"/><code value="ALL"/></tag>
  </meta>
  <url value="http://example.com/fhir/Questionnaire/demo"/>
  <version value="#{version}"/>
  <status value="unknown"/>
  <date value="#{date}"/>
  %s
</Questionnaire>`, pv.ProfilePrefix, pv.SystemReadAccessTag, items)
}

const goodItems = `
  <item>
    <linkId value="business-key"/>
    <type value="string"/>
    <required value="true"/>
  </item>
  <item>
    <linkId value="user-task-id"/>
    <type value="string"/>
    <required value="true"/>
  </item>`

func TestQuestionnaireValidator_MandatoryItems(t *testing.T) {
	v := NewQuestionnaireValidator()

	fs := v.Validate(parseXML(t, questionnaireXML(goodItems)), "q.xml")
	assert.Len(t, byRule(fs, pv.RuleItemBusinessKey, pv.SeveritySuccess), 1)
	assert.Len(t, byRule(fs, pv.RuleItemUserTaskID, pv.SeveritySuccess), 1)

	fs = v.Validate(parseXML(t, questionnaireXML("")), "q.xml")
	assert.Len(t, byRule(fs, pv.RuleItemBusinessKey, pv.SeverityError), 1)
	assert.Len(t, byRule(fs, pv.RuleItemUserTaskID, pv.SeverityError), 1)
}

func TestQuestionnaireValidator_WrongTypeOrOptional(t *testing.T) {
	v := NewQuestionnaireValidator()

	items := `
  <item>
    <linkId value="business-key"/>
    <type value="integer"/>
    <required value="true"/>
  </item>
  <item>
    <linkId value="user-task-id"/>
    <type value="string"/>
  </item>`

	fs := v.Validate(parseXML(t, questionnaireXML(items)), "q.xml")

	bk := byRule(fs, pv.RuleItemBusinessKey, pv.SeverityError)
	require.Len(t, bk, 1)
	assert.Contains(t, bk[0].Message, "string")

	ut := byRule(fs, pv.RuleItemUserTaskID, pv.SeverityError)
	require.Len(t, ut, 1)
	assert.Contains(t, ut[0].Message, "required")
}

func TestQuestionnaireValidator_DuplicateLinkID(t *testing.T) {
	v := NewQuestionnaireValidator()

	items := goodItems + `
  <item>
    <linkId value="business-key"/>
    <type value="string"/>
    <required value="true"/>
  </item>`

	fs := v.Validate(parseXML(t, questionnaireXML(items)), "q.xml")
	dups := byRule(fs, pv.RuleLinkIDDuplicate, pv.SeverityError)
	require.Len(t, dups, 1)
	assert.Contains(t, dups[0].Message, "business-key")
}

func TestQuestionnaireValidator_LinkIDPattern(t *testing.T) {
	v := NewQuestionnaireValidator()

	items := goodItems + `
  <item>
    <linkId value="Bad_Link"/>
    <type value="string"/>
  </item>`

	fs := v.Validate(parseXML(t, questionnaireXML(items)), "q.xml")
	assert.Len(t, byRule(fs, pv.RuleLinkIDPattern, pv.SeverityWarning), 1)
}

func TestQuestionnaireValidator_NestedItems(t *testing.T) {
	v := NewQuestionnaireValidator()

	items := `
  <item>
    <linkId value="group"/>
    <type value="group"/>
    <item>
      <linkId value="business-key"/>
      <type value="string"/>
      <required value="true"/>
    </item>
    <item>
      <linkId value="user-task-id"/>
      <type value="string"/>
      <required value="true"/>
    </item>
  </item>`

	fs := v.Validate(parseXML(t, questionnaireXML(items)), "q.xml")
	assert.Len(t, byRule(fs, pv.RuleItemBusinessKey, pv.SeveritySuccess), 1)
	assert.Len(t, byRule(fs, pv.RuleItemUserTaskID, pv.SeveritySuccess), 1)
}
