/*
Package dnsbench contains the DNS server benchmarking core. A benchmark is
represented by the Benchmark struct that is set up with the servers to test and
the probing configuration and then executed using Benchmark.Run. Each execution
of Benchmark.Run probes every server concurrently and returns a single
BenchmarkResult with per-server statistics ranked by average response time.
*/
package dnsbench
