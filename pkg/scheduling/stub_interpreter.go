package scheduling

import "context"

// StubInterpreter returns a fixed MeetingRequest (or error) and records the
// commands it received.
type StubInterpreter struct {
	Request  *MeetingRequest
	Err      error
	Commands []string
}

func (s *StubInterpreter) Interpret(ctx context.Context, command string) (*MeetingRequest, error) {
	s.Commands = append(s.Commands, command)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Request, nil
}
