package component

// ExecutorSpec binds a spec record to a named execution strategy. The
// orchestration layer stores the binding alongside the spec; the actual
// executor implementation lives in the external execution engine and is
// opaque to component definitions.
type ExecutorSpec interface {
	// ExecutorName identifies the executor implementation to invoke
	ExecutorName() string
	// Encode returns a transport-safe description of the binding
	Encode() map[string]interface{}
}

// BeamExecutorSpec binds a component to a named executor running on the
// distributed Beam-based engine.
type BeamExecutorSpec struct {
	executor     string
	pipelineArgs []string
}

// NewBeamExecutorSpec creates a Beam executor binding for the named
// executor. Optional pipeline args are passed through to the engine
// unmodified.
func NewBeamExecutorSpec(executor string, pipelineArgs ...string) *BeamExecutorSpec {
	return &BeamExecutorSpec{
		executor:     executor,
		pipelineArgs: pipelineArgs,
	}
}

// ExecutorName returns the bound executor name
func (s *BeamExecutorSpec) ExecutorName() string {
	return s.executor
}

// PipelineArgs returns the engine pipeline arguments
func (s *BeamExecutorSpec) PipelineArgs() []string {
	return s.pipelineArgs
}

// Encode returns the transport-safe form of the binding
func (s *BeamExecutorSpec) Encode() map[string]interface{} {
	enc := map[string]interface{}{
		"type":     "beam",
		"executor": s.executor,
	}
	if len(s.pipelineArgs) > 0 {
		enc["pipeline_args"] = s.pipelineArgs
	}
	return enc
}
