package vowel

import "fmt"

// environment is a single frame of bindings. Frames are chained through
// enclosing, the global frame has none. A frame may be shared by any number of
// closures and lives as long as the longest holder.
type environment struct {
	enclosing *environment
	values    map[string]Value
}

func newEnvironment(enclosing *environment) *environment {
	return &environment{enclosing, make(map[string]Value)}
}

func (env *environment) define(name string, value Value) {
	env.values[name] = value
}

// lookup returns the value bound to name in this frame only
func (env *environment) lookup(name string) (Value, bool) {
	value, ok := env.values[name]
	return value, ok
}

func (env *environment) get(name *Token) (Value, error) {
	if value, ok := env.values[name.Lexeme]; ok {
		return value, nil
	}
	if env.enclosing != nil {
		return env.enclosing.get(name)
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return nil, newRuntimeError(name, msg)
}

func (env *environment) assign(name *Token, value Value) error {
	if _, ok := env.values[name.Lexeme]; ok {
		env.values[name.Lexeme] = value
		return nil
	}
	if env.enclosing != nil {
		return env.enclosing.assign(name, value)
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return newRuntimeError(name, msg)
}

// getAt reads name from the frame that is exactly distance frames away
func (env *environment) getAt(distance int, name *Token) (Value, error) {
	frame := env.ancestor(distance)
	if frame != nil {
		if value, ok := frame.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return nil, newRuntimeError(name, msg)
}

// assignAt writes name in the frame that is exactly distance frames away
func (env *environment) assignAt(distance int, name *Token, value Value) error {
	frame := env.ancestor(distance)
	if frame != nil {
		if _, ok := frame.values[name.Lexeme]; ok {
			frame.values[name.Lexeme] = value
			return nil
		}
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return newRuntimeError(name, msg)
}

func (env *environment) ancestor(distance int) *environment {
	frame := env
	for i := 0; i < distance && frame != nil; i++ {
		frame = frame.enclosing
	}
	return frame
}
