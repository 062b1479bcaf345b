package controller

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

func (i *implementation) addReader(_ context.Context, s *session) (outcome, error) {
	name, err := s.ask("Enter reader's name: ")
	if err != nil {
		return "", err
	}

	req := readerRequest{Name: name}
	if i.invalid(s, req.Validate(), "add_reader") {
		return outcomeInvalid, nil
	}

	if !i.readersUseCase.AddReader(entity.NewReader(req.Name)) {
		s.say("Reader %s is already registered", req.Name)
		return outcomeRejected, nil
	}

	s.say("Reader added")
	return outcomeOK, nil
}
