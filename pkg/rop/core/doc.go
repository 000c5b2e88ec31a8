// Package core contains flow plumbing utilities: channel helpers, buffer
// configuration via context, and the locomotive that drives one flow from its
// source through the transform and sink stages. It does not define business
// logic; package mutator builds the orchestration on top of it.
package core
