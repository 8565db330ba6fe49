// This file is part of Cube030.
//
// Cube030 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cube030 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cube030.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the default address of the statistics server.
const Address = "localhost:12600"

const url = "/debug/statsview"

// URL returns the location of the statistics page for the address.
func URL(address string) string {
	return fmt.Sprintf("http://%s%s", address, url)
}

// Launch a new goroutine running the statsview server at the address. An
// empty address means the default Address. The location of the statistics
// page is written to output.
func Launch(output io.Writer, address string) {
	if address == "" {
		address = Address
	}

	go func() {
		viewer.SetConfiguration(viewer.WithAddr(address))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL(address))
}
