package controller

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

func (i *implementation) addBook(_ context.Context, s *session) (outcome, error) {
	answers, err := s.askAll("Enter book title: ", "Enter author: ")
	if err != nil {
		return "", err
	}

	req := bookRequest{Title: answers[0], Author: answers[1]}
	if i.invalid(s, req.Validate(), "add_book") {
		return outcomeInvalid, nil
	}

	if !i.booksUseCase.AddBook(entity.NewBook(req.Title, req.Author)) {
		s.say("%q by %s is already in the library", req.Title, req.Author)
		return outcomeRejected, nil
	}

	s.say("Book added")
	return outcomeOK, nil
}
