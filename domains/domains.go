// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package domains

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultWarm returns popular domains likely to be cached by most
// resolvers.
func DefaultWarm() []string {
	return []string{
		"google.com",
		"youtube.com",
		"facebook.com",
		"amazon.com",
		"wikipedia.org",
		"twitter.com",
		"reddit.com",
		"netflix.com",
		"microsoft.com",
		"apple.com",
	}
}

// DefaultCold returns real, resolvable domains unlikely to be cached by
// resolvers; they trigger actual uncached resolution rather than
// NXDOMAIN negative caching.
func DefaultCold() []string {
	return []string{
		// government and institutional
		"archives.gov",
		"usgs.gov",
		"noaa.gov",
		"energy.gov",
		"census.gov",
		"si.edu",
		"caltech.edu",
		"mit.edu",
		"stanford.edu",
		"cornell.edu",
		// international research institutions
		"cern.ch",
		"csiro.au",
		"keio.ac.jp",
		"ethz.ch",
		"mpg.de",
		"cnrs.fr",
		"nrc.ca",
		"anu.edu.au",
		"cam.ac.uk",
		"tudelft.nl",
		// country-code TLD variety
		"ibge.gov.br",
		"kb.se",
		"onb.ac.at",
		"nationaalarchief.nl",
		"riksarkivet.no",
		"arkisto.fi",
		"nla.gov.au",
		"ndl.go.jp",
		"snu.ac.kr",
		"natlib.govt.nz",
		// less common TLDs
		"pkg.dev",
		"fonts.google.com",
		"crates.io",
		"httpbin.org",
		"lobste.rs",
		"arxiv.org",
		"jstor.org",
		"archive.org",
		"gutenberg.org",
		"openlibrary.org",
		// regional broadcasters
		"rtve.es",
		"yle.fi",
		"dr.dk",
		"nrk.no",
		"svt.se",
		"rtp.pt",
		"rte.ie",
		"srf.ch",
		"orf.at",
		"vrt.be",
	}
}

// DefaultTLD returns one real domain per TLD for measuring uncached
// resolution across diverse authoritative TLD infrastructure.
func DefaultTLD() []string {
	return []string{
		// generic TLDs
		"icann.org",
		"iana.org",
		"ietf.org",
		"example.net",
		"verisign.com",
		// tech TLDs
		"pkg.dev",
		"web.app",
		"dart.dev",
		// government and education
		"nist.gov",
		"loc.gov",
		"mit.edu",
		// European ccTLDs
		"ox.ac.uk",
		"tu-berlin.de",
		"inria.fr",
		"uva.nl",
		"kth.se",
		"lu.ch",
		"tuwien.at",
		"kuleuven.be",
		"tcd.ie",
		"ulisboa.pt",
		"uio.no",
		"oulu.fi",
		"ku.dk",
		// Asia-Pacific ccTLDs
		"keio.ac.jp",
		"snu.ac.kr",
		"iitb.ac.in",
		"uq.edu.au",
		"auckland.ac.nz",
		// Americas and Africa ccTLDs
		"ubc.ca",
		"unam.mx",
		"usp.br",
		"uct.ac.za",
	}
}

// ReadFile reads domains from a file, one per line; blank lines and lines
// starting with '#' are skipped.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read domain file %q: %w", path, err)
	}
	defer f.Close()
	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read domain file %q: %w", path, err)
	}
	return names, nil
}
