package resource

import (
	"fmt"
	"strings"

	pv "github.com/careproc/validator"
	"github.com/careproc/validator/element"
)

// checkProfilePrefix verifies the document declares an authoring
// profile under the conventional prefix.
func checkProfilePrefix(doc *element.Element, file string) pv.Finding {
	for _, p := range doc.All("meta", "profile") {
		if strings.HasPrefix(p.Value(), pv.ProfilePrefix) {
			return pv.Success(pv.RuleProfilePrefix).
				Message(fmt.Sprintf("declared profile %s", p.Value())).
				In(file).Ref(p.Value()).Build()
		}
	}
	return pv.Warning(pv.RuleProfilePrefix).
		Message(fmt.Sprintf("no declared profile starts with %s", pv.ProfilePrefix)).
		In(file).Build()
}

// checkReadAccessTag verifies the access-control tag is present.
func checkReadAccessTag(doc *element.Element, file string) pv.Finding {
	for _, tag := range doc.All("meta", "tag") {
		if tag.ValueOf("system") == pv.SystemReadAccessTag && tag.ValueOf("code") != "" {
			return pv.Success(pv.RuleReadAccessTag).
				Message(fmt.Sprintf("read-access tag %s present", tag.ValueOf("code"))).
				In(file).Build()
		}
	}
	return pv.Error(pv.RuleReadAccessTag).
		Message("resource carries no read-access tag").
		In(file).Build()
}

// checkCanonicalURL verifies the canonical URL element is present.
func checkCanonicalURL(doc *element.Element, file string) pv.Finding {
	if url := doc.ValueOf("url"); url != "" {
		return pv.Success(pv.RuleCanonicalURL).
			Message(fmt.Sprintf("canonical url %s", url)).
			In(file).Ref(url).Build()
	}
	return pv.Error(pv.RuleCanonicalURL).
		Message("resource has no canonical url").
		In(file).Build()
}

// checkStatus verifies the status equals the expected literal.
func checkStatus(doc *element.Element, file, expected string) pv.Finding {
	status := doc.ValueOf("status")
	if status == expected {
		return pv.Success(pv.RuleStatusLiteral).
			Message(fmt.Sprintf("status is %q", expected)).
			In(file).Build()
	}
	return pv.Error(pv.RuleStatusLiteral).
		Message(fmt.Sprintf("status is %q, expected %q", status, expected)).
		In(file).Build()
}

// checkVersionPlaceholder verifies the version field still carries the
// template placeholder; authored resources must not be finalized by
// hand. Exactly one finding per field, success or not.
func checkVersionPlaceholder(doc *element.Element, file string) pv.Finding {
	version := doc.ValueOf("version")
	if strings.Contains(version, pv.VersionPlaceholder) {
		return pv.Success(pv.RuleVersionPlaceholder).
			Message("version field carries the version placeholder").
			In(file).Build()
	}
	return pv.Error(pv.RuleVersionPlaceholder).
		Message(fmt.Sprintf("version field %q does not contain %s", version, pv.VersionPlaceholder)).
		In(file).Build()
}

// checkDatePlaceholder verifies the date field still carries the
// template placeholder.
func checkDatePlaceholder(doc *element.Element, file string) pv.Finding {
	date := doc.ValueOf("date")
	if strings.Contains(date, pv.DatePlaceholder) {
		return pv.Success(pv.RuleDatePlaceholder).
			Message("date field carries the date placeholder").
			In(file).Build()
	}
	return pv.Warning(pv.RuleDatePlaceholder).
		Message(fmt.Sprintf("date field %q does not contain %s", date, pv.DatePlaceholder)).
		In(file).Build()
}

// metadataChecks bundles the checks every metadata resource shares.
func metadataChecks(doc *element.Element, file string) []pv.Finding {
	return []pv.Finding{
		checkProfilePrefix(doc, file),
		checkReadAccessTag(doc, file),
		checkCanonicalURL(doc, file),
		checkStatus(doc, file, pv.ExpectedStatus),
		checkVersionPlaceholder(doc, file),
		checkDatePlaceholder(doc, file),
	}
}

// elementID reads an element id in either serialization form: an
// attribute in XML, a child element after JSON normalization.
func elementID(el *element.Element) string {
	if id := el.Attr("id"); id != "" {
		return id
	}
	return el.ValueOf("id")
}
