package controller

import "context"

func (i *implementation) removeReader(_ context.Context, s *session) (outcome, error) {
	name, err := s.ask("Enter reader's name: ")
	if err != nil {
		return "", err
	}

	req := readerRequest{Name: name}
	if i.invalid(s, req.Validate(), "remove_reader") {
		return outcomeInvalid, nil
	}

	reader, ok := i.readersUseCase.FindReader(req.Name)
	if !ok {
		s.say("Reader %s is not registered", req.Name)
		return outcomeRejected, nil
	}

	i.readersUseCase.RemoveReader(reader)
	if held := len(reader.Borrowed()); held > 0 {
		s.say("Reader removed, %d borrowed book(s) were not returned", held)
		return outcomeOK, nil
	}

	s.say("Reader removed")
	return outcomeOK, nil
}
