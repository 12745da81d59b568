// Package extract turns raw table fragments into canonical tables.
//
// The pipeline is a fixed sequence of pure stages. Each stage consumes
// the table produced by the previous one plus the immutable Config, and
// no stage touches global state, performs I/O, or blocks. Extracting
// different fragments concurrently therefore needs no coordination.
//
// # Stages
//
// Model construction copies the fragment into a model.Table, cleaning
// cell content as it goes. Header detection examines the first row with
// three independent signals and marks it as a header when any signal
// fires. Merge resolution reconciles declared colspan/rowspan values
// under the configured policy, materializing continuation cells or
// dropping spans. Normalization settles the final rectangular shape and
// pads short rows.
//
// # Anomalies
//
// Findings that do not prevent extraction, such as ragged rows or
// conflicting header signals, are returned as Anomaly values rather than
// logged. Structural contradictions, such as two spans claiming the same
// grid position, abort extraction with a typed error and no table.
//
// # Usage
//
//	table, anomalies, err := extract.Extract(fragment, extract.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for _, a := range anomalies {
//		fmt.Println(a)
//	}
package extract
