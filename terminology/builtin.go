package terminology

import pv "github.com/careproc/validator"

// builtins are the vocabularies every run starts with; project seeding
// only ever adds to these.
var builtins = map[string][]string{
	pv.SystemReadAccessTag: {
		"ALL", "LOCAL", "ORGANIZATION", "ROLE",
	},
	pv.SystemProcessAuthorization: {
		"LOCAL_ALL", "LOCAL_ORGANIZATION", "LOCAL_ROLE",
		"REMOTE_ALL", "REMOTE_ORGANIZATION", "REMOTE_ROLE",
	},
	pv.SystemPublicationStatus: {
		"draft", "active", "retired", "unknown",
	},
	pv.SystemTaskStatus: {
		"draft", "requested", "received", "accepted", "rejected",
		"ready", "cancelled", "in-progress", "on-hold", "failed",
		"completed", "entered-in-error",
	},
	pv.SystemTaskInput: {
		pv.SliceMessageName, pv.SliceBusinessKey, pv.SliceCorrelationKey,
	},
}

func (c *Cache) registerBuiltins() {
	for system, codes := range builtins {
		c.Register(system, codes...)
	}
}
