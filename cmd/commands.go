package cmd

import (
	"os"

	sha256 "github.com/minio/sha256-simd"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/ectools/unfec/codec"
	"github.com/ectools/unfec/decoder"
	u "github.com/ectools/unfec/util"
)

var (
	k        int
	n        int
	file_out string
	size     int64
	scheme   string
	sumHex   string

	root_cmd = &cobra.Command{
		Use:   "unfec [flags] <share-path>...",
		Short: "Reconstruct a file from Reed-Solomon erasure shards.",
		Long: `Reconstruct the original file from any k of the n erasure shards it
was split into. You must know the k and n used at encoding time and
which original index each supplied shard file carries.

Reed-Solomon encoding pads the data to a block boundary, so the raw
reconstruction may end in padding bytes. Pass --size with the exact
original byte length (for archives, the compressed_size recorded in
the index file) to truncate the padding off; without it the padded
stream is written verbatim.

Example:
  unfec -k 2 -n 3 -o chunk001.zst --size 1048177 \
        archive.c001.s00 archive.c001.s02 --indices 0,2`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         runReconstruct,
	}
)

func Execute() error {
	iit()
	return root_cmd.Execute()
}

func iit() {
	root_cmd.Flags().IntVarP(&k, "k", "k", 0, "Minimum number of shards required to reconstruct")
	root_cmd.Flags().IntVarP(&n, "n", "n", 0, "Total number of shards originally produced")
	root_cmd.Flags().StringVarP(&file_out, "output", "o", "", "Output file (overwritten if it exists)")
	root_cmd.Flags().Int64VarP(&size, "size", "s", codec.NoTruncate, "Exact byte length of the original data; truncates encoder padding")
	root_cmd.Flags().StringVarP(&scheme, "scheme", "p", "fec", "Erasure scheme the shards were encoded with ({\"fec\",\"rs\"})")
	root_cmd.Flags().StringVar(&sumHex, "sha256", "", "Hex SHA-256 digest the reconstructed output must match")
	root_cmd.Flags().IntSlice("indices", []int{}, "Original shard index of each share path, order-paired, each in [0, n)")
	viper.BindPFlag("indices", root_cmd.Flags().Lookup("indices"))

	root_cmd.MarkFlagRequired("k")
	root_cmd.MarkFlagRequired("n")
	root_cmd.MarkFlagRequired("output")
	root_cmd.MarkFlagRequired("indices")
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	var sum []byte
	if sumHex != "" {
		var err error
		if sum, err = u.ParseDigest(sumHex, sha256.Size); err != nil {
			return err
		}
	}

	dec, err := newDecoder()
	if err != nil {
		return err
	}

	r := codec.NewReconstructor(dec, log)
	return r.ReconstructFile(args, viper.GetIntSlice("indices"), file_out, size, sum)
}

func newDecoder() (decoder.Decoder, error) {
	switch scheme {
	case "fec":
		return decoder.NewFEC(k, n)
	case "rs":
		return decoder.NewRS(k, n)
	}
	return nil, xerrors.Errorf("unknown scheme %q", scheme)
}
