package interval

import (
	"encoding/json"
	"fmt"
)

type boundJSON[E any] struct {
	Kind  string `json:"kind"`
	Value *E     `json:"value,omitempty"`
}

func (b Bound[E]) MarshalJSON() ([]byte, error) {
	bj := boundJSON[E]{Kind: b.kind.String()}
	if b.kind != BoundUnbounded {
		v := b.value
		bj.Value = &v
	}
	return json.Marshal(bj)
}

func (b *Bound[E]) UnmarshalJSON(data []byte) error {
	var bj boundJSON[E]
	if err := json.Unmarshal(data, &bj); err != nil {
		return err
	}
	kind, err := ParseBoundKind(bj.Kind)
	if err != nil {
		return err
	}
	b.kind = kind
	var v E
	if kind != BoundUnbounded {
		if bj.Value == nil {
			return fmt.Errorf("bound kind %s requires a value", kind)
		}
		v = *bj.Value
	}
	b.value = v
	return nil
}
