package controller

import (
	"context"
	"strings"

	"github.com/project/catalog/internal/entity"
	"github.com/samber/lo"
)

func (i *implementation) listReaders(_ context.Context, s *session) (outcome, error) {
	readers := i.readersUseCase.Readers()
	if len(readers) == 0 {
		s.say("No readers registered")
		return outcomeOK, nil
	}

	for _, reader := range readers {
		titles := lo.Map(reader.Borrowed(), func(key entity.BookKey, _ int) string {
			return key.Title
		})
		if len(titles) == 0 {
			s.say("%s", reader.Name())
			continue
		}
		s.say("%s: %s", reader.Name(), strings.Join(titles, ", "))
	}
	return outcomeOK, nil
}
