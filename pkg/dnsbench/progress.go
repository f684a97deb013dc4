package dnsbench

// ProgressSink receives observational callbacks as the benchmark advances.
// Implementations must not block; the benchmark outcome does not depend on
// the sink in any way and a nil sink is valid.
type ProgressSink interface {
	// OnServerStart is called once a server probe passed the admission gate.
	OnServerStart(server Server, totalRequests int)
	// OnRequestComplete is called after every finished request, successful or not.
	OnRequestComplete(server Server)
	// OnServerDone is called after the server result was collected.
	OnServerDone(server Server)
}
