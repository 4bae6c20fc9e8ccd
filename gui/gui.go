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

// Package gui defines the operations that can be performed on the visual
// front ends of the emulated handheld. Implementations register themselves
// with the VDU as tile renderers and with the joypad as sources of button
// input; the GUI interface covers everything else.
package gui

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Service pending user input and redraw. MUST be called from the main
	// goroutine at a regular rate.
	Service()

	// Destroy ends the GUI, releasing anything the underlying system holds.
	Destroy()
}

// Sentinal error returned if GUI does not support requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)

// FeatureReq is used to request the setting of a gui attribute, eg. the
// window scale.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the application will
// probably crash.
const (
	// show or hide the window.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the amount of scaling applied to each tile pixel.
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// whether the emulation should be limited to the hardware frame rate.
	ReqSetFPSCap FeatureReq = "ReqSetFPSCap" // bool
)
