// Package metrics records run statistics for papersite commands.
//
// Commands receive a Recorder. NoopRecorder is the default; PrometheusRecorder
// collects into a registry that is written as a node_exporter textfile once the
// run completes (see WriteTextfile), so scheduled site rebuilds can be scraped
// without a long-running process.
package metrics
