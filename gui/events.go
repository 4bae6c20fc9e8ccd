// This file is part of Gopherwatch.
//
// Gopherwatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherwatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherwatch.  If not, see <https://www.gnu.org/licenses/>.

package gui

// Event represents all the different kinds of events a GUI may forward to
// the parent process.
type Event interface{}

// EventQuit is sent when the user closes the window or otherwise asks the
// application to end.
type EventQuit struct{}
