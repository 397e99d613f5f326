// Package terminology answers "is this controlled-vocabulary code
// known" queries. A cache starts with the built-in vocabularies and is
// lazily extended by scanning a project's code-system folder at the
// start of a run. State is explicit: one cache per run (or a long-lived
// instance with Reset for tests), passed by reference to every
// validator that needs it.
package terminology
