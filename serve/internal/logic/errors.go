package logic

import "errors"

// MaxBoardSize bounds what the serve will think about; anything larger is a
// client error.
const MaxBoardSize = 19

var BoardSizeOutOfRangeErr = errors.New("board size out of range")
