// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package normalize

import (
	"fmt"
	"math"
	"strings"

	gocvss20 "github.com/pandatix/go-cvss/20"
	gocvss30 "github.com/pandatix/go-cvss/30"
	gocvss31 "github.com/pandatix/go-cvss/31"
	gocvss40 "github.com/pandatix/go-cvss/40"
)

// CVSSBaseScore parses a cvss vector of any supported version and returns its base score.
func CVSSBaseScore(vector string) (float64, error) {
	vector = strings.TrimSpace(vector)
	var score float64
	switch {
	case strings.HasPrefix(vector, "CVSS:3.0"):
		cvss, err := gocvss30.ParseVector(vector)
		if err != nil {
			return 0, fmt.Errorf("could not parse cvss 3.0 vector: %w", err)
		}
		score = cvss.BaseScore()
	case strings.HasPrefix(vector, "CVSS:3.1"):
		cvss, err := gocvss31.ParseVector(vector)
		if err != nil {
			return 0, fmt.Errorf("could not parse cvss 3.1 vector: %w", err)
		}
		score = cvss.BaseScore()
	case strings.HasPrefix(vector, "CVSS:4.0"):
		cvss, err := gocvss40.ParseVector(vector)
		if err != nil {
			return 0, fmt.Errorf("could not parse cvss 4.0 vector: %w", err)
		}
		score = cvss.Score()
	default:
		// v2 vectors carry no prefix
		cvss, err := gocvss20.ParseVector(vector)
		if err != nil {
			return 0, fmt.Errorf("could not parse cvss 2.0 vector: %w", err)
		}
		score = cvss.BaseScore()
	}
	return math.Round(score*10) / 10, nil
}
