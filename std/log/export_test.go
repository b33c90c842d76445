package log

import "os"

var osExit = os.Exit
