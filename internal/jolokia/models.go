package jolokia

// QueueDetails is a read-only snapshot of the gauges the broker reports for a
// single queue.
type QueueDetails struct {
	Name          string `json:"name"`
	QueueSize     int64  `json:"queueSize"`
	ConsumerCount int64  `json:"consumerCount"`
	EnqueueCount  int64  `json:"enqueueCount"`
	DequeueCount  int64  `json:"dequeueCount"`
}

// QueueFailure records a queue whose detail read failed, so that a report can
// carry partial results without hiding the failures.
type QueueFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// QueueReport is the outcome of reading the details of every queue on a
// broker. Queues and Failures together cover all discovered queue names.
type QueueReport struct {
	Queues   []QueueDetails `json:"queues"`
	Failures []QueueFailure `json:"failures,omitempty"`
}
