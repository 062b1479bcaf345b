package controller

import "context"

func (i *implementation) returnBook(_ context.Context, s *session) (outcome, error) {
	answers, err := s.askAll("Enter reader's name: ", "Enter book title: ")
	if err != nil {
		return "", err
	}

	req := loanRequest{Reader: answers[0], Title: answers[1]}
	if i.invalid(s, req.Validate(), "return_book") {
		return outcomeInvalid, nil
	}

	reader, ok := i.readersUseCase.FindReader(req.Reader)
	if !ok {
		s.say("Reader %s is not registered", req.Reader)
		return outcomeRejected, nil
	}

	book, ok := i.readersUseCase.FindBorrowedBook(reader, req.Title)
	if !ok || !i.readersUseCase.AcceptReturn(reader, book) {
		s.say("%s does not hold %q", reader.Name(), req.Title)
		return outcomeRejected, nil
	}

	s.say("%q returned by %s", book.Title(), reader.Name())
	return outcomeOK, nil
}
