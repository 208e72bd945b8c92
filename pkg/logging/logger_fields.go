package logging

import "time"

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain helpers

func Component(name string) Field {
	return String("component", name)
}

func Session(id string) Field {
	return String("session", id)
}

func NodeID(id uint64) Field {
	return Uint64("node_id", id)
}

func PortID(id uint64) Field {
	return Uint64("port_id", id)
}

func Template(name string) Field {
	return String("template", name)
}

func Kind(name string) Field {
	return String("kind", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

// Point records a 2-D coordinate as {"x":..,"y":..}
func Point(key string, x, y float64) Field {
	return Field{Key: key, Value: map[string]float64{"x": x, "y": y}}
}

func Zoom(z float64) Field {
	return Float64("zoom", z)
}
