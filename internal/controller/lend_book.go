package controller

import "context"

func (i *implementation) lendBook(_ context.Context, s *session) (outcome, error) {
	answers, err := s.askAll("Enter reader's name: ", "Enter book title: ")
	if err != nil {
		return "", err
	}

	req := loanRequest{Reader: answers[0], Title: answers[1]}
	if i.invalid(s, req.Validate(), "lend_book") {
		return outcomeInvalid, nil
	}

	reader, ok := i.readersUseCase.FindReader(req.Reader)
	if !ok {
		s.say("Reader %s is not registered", req.Reader)
		return outcomeRejected, nil
	}

	book, ok := i.booksUseCase.FindAvailableBook(req.Title)
	if !ok || !i.readersUseCase.Lend(reader, book) {
		s.say("No available copy of %q", req.Title)
		return outcomeRejected, nil
	}

	s.say("%q by %s lent to %s", book.Title(), book.Author(), reader.Name())
	return outcomeOK, nil
}
