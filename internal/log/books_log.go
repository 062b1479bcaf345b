package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddBook(l *zap.Logger, msg string, title, author string, added bool) {
	logger.MakeInfo(l, msg,
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Bool("added", added),
		zap.String("action", AddBook))
}

func InfoRemoveBook(l *zap.Logger, msg string, title, author string, removed bool) {
	logger.MakeInfo(l, msg,
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Bool("removed", removed),
		zap.String("action", RemoveBook))
}

func InfoLendBook(l *zap.Logger, msg string, readerName, title, author string, lent bool) {
	logger.MakeInfo(l, msg,
		zap.String("reader_name", readerName),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Bool("lent", lent),
		zap.String("action", LendBook))
}

func InfoAcceptReturn(l *zap.Logger, msg string, readerName, title, author string, returned bool) {
	logger.MakeInfo(l, msg,
		zap.String("reader_name", readerName),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Bool("returned", returned),
		zap.String("action", AcceptReturn))
}
