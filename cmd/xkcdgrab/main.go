// XkcdGrab: A small CLI tool for fetching and saving xkcd comics.
// Copyright (C) 2025 Luca M. Schmidt (LuMiSxh)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"XkcdGrab/internal/commands"
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	Version = "dev"
)

func main() {
	// Interrupts cancel the in-flight request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := commands.Execute(ctx, Version, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
