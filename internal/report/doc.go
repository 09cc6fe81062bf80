// Package report renders aggregate results as terminal text.
//
// A report is a list of sections chosen either directly or through a named
// variant. Variants only select sections; every variant reads the same
// aggregate.Result. Tables are drawn with go-pretty.
package report
