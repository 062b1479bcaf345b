package controller

import "context"

func (i *implementation) saveCatalog(ctx context.Context, s *session) (outcome, error) {
	answers, err := s.askAll(
		"Enter file name: ",
		"To sort books before export, enter 1: ",
		"To sort readers before export, enter 1: ",
	)
	if err != nil {
		return "", err
	}

	req := fileRequest{File: answers[0]}
	if i.invalid(s, req.Validate(), "save_catalog") {
		return outcomeInvalid, nil
	}

	path := i.path(req.File)
	if err = i.storageUseCase.Export(ctx, path, answers[1] == sortFlag, answers[2] == sortFlag); err != nil {
		s.say("Library was not saved, %s", i.convertErr(err))
		return outcomeError, nil
	}

	s.say("Library saved to %s", path)
	return outcomeOK, nil
}
