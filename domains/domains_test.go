// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package domains

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("benchmark domain sets", func() {

	It("ships warm domains", func() {
		warm := DefaultWarm()
		Expect(warm).To(HaveLen(10))
		Expect(warm).To(ContainElement("google.com"))
	})

	It("ships cold domains without duplicating the warm set", func() {
		cold := DefaultCold()
		Expect(cold).To(HaveLen(50))
		for _, domain := range DefaultWarm() {
			Expect(cold).NotTo(ContainElement(domain))
		}
	})

	It("ships a TLD set covering many distinct TLDs", func() {
		tlds := map[string]bool{}
		for _, domain := range DefaultTLD() {
			labels := strings.Split(domain, ".")
			tlds[labels[len(labels)-1]] = true
		}
		Expect(len(tlds)).To(BeNumerically(">=", 15))
	})

	Context("domain list files", func() {

		It("reads domains, skipping blanks and comments", func() {
			path := filepath.Join(GinkgoT().TempDir(), "domains.txt")
			Expect(os.WriteFile(path, []byte(
				"# favourites\n\nexample.com\nexample.org\n"), 0o644)).To(Succeed())
			Expect(Successful(ReadFile(path))).To(
				Equal([]string{"example.com", "example.org"}))
		})

		It("reports missing files", func() {
			_, err := ReadFile("/nonexisting/domains.txt")
			Expect(err).To(HaveOccurred())
		})

	})

})
