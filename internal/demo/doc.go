// Package demo contains the sample applications driven by the jst CLI.
//
// Each demo is a component tree plus a Tick method that applies one
// scripted change, so that the serve, bench and publish commands can show
// reconciliation at work without user input.
package demo
