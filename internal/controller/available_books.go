package controller

import "context"

func (i *implementation) availableBooks(_ context.Context, s *session) (outcome, error) {
	books := i.booksUseCase.AvailableBooks()
	if len(books) == 0 {
		s.say("No books available")
		return outcomeOK, nil
	}

	for _, book := range books {
		s.say("%s (%s)", book.Title(), book.Author())
	}
	return outcomeOK, nil
}
