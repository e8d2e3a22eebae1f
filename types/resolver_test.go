// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("resolver targets", func() {

	Context("parsing resolver addresses", func() {

		It("defaults to the DNS port for a plain IPv4 address", func() {
			target := Successful(ParseResolver("1.1.1.1"))
			Expect(target.Addr.String()).To(Equal("1.1.1.1:53"))
			Expect(target.Label).To(Equal("1.1.1.1"))
		})

		It("honors an explicit IPv4 port", func() {
			target := Successful(ParseResolver("8.8.8.8:5353"))
			Expect(target.Addr.String()).To(Equal("8.8.8.8:5353"))
		})

		It("defaults to the DNS port for a bare IPv6 address", func() {
			target := Successful(ParseResolver("2606:4700::1111"))
			Expect(target.Addr.Port()).To(Equal(uint16(53)))
			Expect(target.Addr.Addr().Is6()).To(BeTrue())
		})

		It("honors a bracketed IPv6 address with port", func() {
			target := Successful(ParseResolver("[2606:4700::1111]:5353"))
			Expect(target.Addr.Port()).To(Equal(uint16(5353)))
		})

		It("trims surrounding whitespace", func() {
			target := Successful(ParseResolver("  9.9.9.9 "))
			Expect(target.Addr.String()).To(Equal("9.9.9.9:53"))
		})

		It("rejects what isn't an IP address", func() {
			for _, input := range []string{"", "dns.example.com", "1.2.3", "[::1]"} {
				_, err := ParseResolver(input)
				Expect(err).To(HaveOccurred(), "input %q", input)
			}
		})

	})

	Context("resolver list files", func() {

		It("reads addresses, skipping blanks and comments", func() {
			path := filepath.Join(GinkgoT().TempDir(), "resolvers.txt")
			Expect(os.WriteFile(path, []byte(
				"# public resolvers\n\n1.1.1.1\n8.8.8.8:5353\n"), 0o644)).To(Succeed())
			targets := Successful(ReadResolverFile(path))
			Expect(targets).To(HaveLen(2))
			Expect(targets[0].Addr.String()).To(Equal("1.1.1.1:53"))
			Expect(targets[1].Addr.String()).To(Equal("8.8.8.8:5353"))
		})

		It("reports unparseable lines", func() {
			path := filepath.Join(GinkgoT().TempDir(), "resolvers.txt")
			Expect(os.WriteFile(path, []byte("not-an-ip\n"), 0o644)).To(Succeed())
			_, err := ReadResolverFile(path)
			Expect(err).To(HaveOccurred())
		})

		It("reports missing files", func() {
			_, err := ReadResolverFile("/nonexisting/resolvers.txt")
			Expect(err).To(HaveOccurred())
		})

	})

	It("ships a non-empty built-in resolver list", func() {
		defaults := DefaultResolvers()
		Expect(defaults).To(HaveLen(4))
		for _, target := range defaults {
			Expect(target.Label).NotTo(BeEmpty())
			Expect(target.Addr.Port()).To(Equal(uint16(53)))
		}
	})

})
