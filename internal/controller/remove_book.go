package controller

import "context"

func (i *implementation) removeBook(_ context.Context, s *session) (outcome, error) {
	answers, err := s.askAll("Enter book title: ", "Enter author: ")
	if err != nil {
		return "", err
	}

	req := bookRequest{Title: answers[0], Author: answers[1]}
	if i.invalid(s, req.Validate(), "remove_book") {
		return outcomeInvalid, nil
	}

	book, ok := i.booksUseCase.FindBook(req.Title, req.Author)
	if !ok {
		s.say("%q by %s is not in the library", req.Title, req.Author)
		return outcomeRejected, nil
	}

	i.booksUseCase.RemoveBook(book)
	if !book.Available() {
		s.say("Book removed, it is still lent out")
		return outcomeOK, nil
	}

	s.say("Book removed")
	return outcomeOK, nil
}
