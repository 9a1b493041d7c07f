package rollbuf

import "encoding/json"

// MarshalJSON encodes the buffer as a JSON array in logical order,
// oldest first. An empty buffer encodes as [].
func (r *Buffer[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}
