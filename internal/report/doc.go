// Package report renders the outcome of a rename run as YAML, TOML or JSON.
//
// Each processed argument becomes one [Entry]. Arguments never reached
// because the run stopped early are not listed.
package report
