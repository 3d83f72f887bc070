package registry

// Registry is the handle→room-id index consulted on disconnect. It is a
// derived index only; seat assignments inside each Room stay the source of
// truth. Like the room table it is owned and serialized by the hub loop, so
// it carries no lock.
type Registry struct {
	byHandle map[string]string
}

func New() *Registry {
	return &Registry{byHandle: make(map[string]string)}
}

// Bind records that handle is seated in roomID. A handle joining a second
// room rebinds to the newest one.
func (r *Registry) Bind(handle, roomID string) {
	r.byHandle[handle] = roomID
}

// Lookup returns the room a handle is bound to, if any.
func (r *Registry) Lookup(handle string) (string, bool) {
	roomID, ok := r.byHandle[handle]
	return roomID, ok
}

// Unbind drops the entry for handle. Unknown handles are a no-op.
func (r *Registry) Unbind(handle string) {
	delete(r.byHandle, handle)
}
