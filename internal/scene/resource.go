package scene

// Resource is a value backed by GPU memory. Dispose releases it exactly once;
// hooks registered with OnDispose run on that first call.
type Resource interface {
	Dispose()
	Disposed() bool
	OnDispose(fn func())
}

type resource struct {
	disposed bool
	hooks    []func()
}

func (r *resource) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true

	hooks := r.hooks
	r.hooks = nil
	for _, fn := range hooks {
		fn()
	}
}

func (r *resource) Disposed() bool {
	return r.disposed
}

// OnDispose registers fn to run when the resource is disposed. A hook added
// after disposal runs immediately.
func (r *resource) OnDispose(fn func()) {
	if r.disposed {
		fn()
		return
	}
	r.hooks = append(r.hooks, fn)
}
