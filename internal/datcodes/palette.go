package datcodes

// Palette is the fixed 768-byte (256-color, RGB) palette block every DAT
// file embeds between its header and its pixel rows (spec §4.5). The
// values are byte-for-byte the ones every DAT file in the wild carries;
// nothing about this encoder's output is allowed to vary them.
var Palette = [768]byte{
	0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0x6c, 0x4a, 0xff, 0xb4, 0x99, 0x90, 0x80, 0xcf,
	0x52, 0x51, 0xeb, 0x00, 0xfc, 0xb2, 0xfc, 0xfc, 0xfc, 0xfc, 0x64, 0xd8, 0xeb, 0xa0, 0x90, 0x73,
	0x9d, 0x73, 0xd8, 0xeb, 0xff, 0xb4, 0xac, 0xd7, 0xd8, 0x7f, 0xd8, 0x90, 0xca, 0xd8, 0xae, 0xbc,
	0x80, 0x9f, 0xff, 0xdc, 0xfc, 0xc0, 0xd8, 0xfc, 0x90, 0xff, 0xfd, 0xb4, 0x00, 0xa0, 0x32, 0x32,
	0x00, 0x35, 0xd8, 0xd8, 0xa8, 0xc0, 0xff, 0x99, 0xb7, 0x00, 0xe2, 0xc5, 0x90, 0xc0, 0x90, 0x90,
	0x4a, 0x00, 0x90, 0x6d, 0x00, 0x00, 0x66, 0x33, 0x85, 0x99, 0x78, 0xca, 0xb4, 0x90, 0x7d, 0xff,
	0xff, 0xff, 0x7f, 0x69, 0xfa, 0x81, 0xfc, 0xac, 0x7f, 0xb2, 0xb4, 0xb4, 0xb4, 0xd4, 0xff, 0x90,
	0xff, 0xc0, 0xc0, 0x73, 0xd8, 0xa9, 0xbf, 0xb4, 0xff, 0x90, 0xd8, 0xb2, 0xaa, 0x00, 0xd8, 0x00,
	0xfb, 0x90, 0x81, 0x9d, 0x37, 0xac, 0xdd, 0xbf, 0xb9, 0x3f, 0xef, 0xd7, 0xde, 0xfd, 0xfe, 0x73,
	0x2f, 0x8d, 0xfb, 0xff, 0xfe, 0xed, 0x06, 0xf5, 0xea, 0xed, 0xad, 0x3d, 0xfc, 0xfa, 0xef, 0xfd,
	0x66, 0x8d, 0x7f, 0x7a, 0x5f, 0x79, 0x9b, 0x71, 0xff, 0xee, 0xa8, 0xff, 0x9f, 0xdb, 0xf5, 0xff,
	0xcd, 0xf3, 0xe0, 0xfe, 0xc8, 0x79, 0x73, 0x1f, 0xbf, 0xe5, 0xf3, 0xf6, 0xe0, 0xde, 0xf0, 0xcc,
	0x4b, 0x64, 0x40, 0xa1, 0xf7, 0x1a, 0xe0, 0x67, 0xff, 0x64, 0xf5, 0x3f, 0x97, 0xef, 0x14, 0x96,
	0xd7, 0x67, 0xb7, 0xee, 0xba, 0xea, 0x6c, 0xbd, 0x26, 0x4e, 0x64, 0x2f, 0xbf, 0x9f, 0x7f, 0xf3,
	0xaa, 0xff, 0xe6, 0xbf, 0x57, 0xeb, 0x06, 0xfe, 0x4f, 0xed, 0x6a, 0xef, 0x62, 0xb7, 0xdd, 0xcf,
	0x66, 0x6b, 0xb2, 0x7a, 0x5a, 0xf7, 0x9c, 0x4c, 0x96, 0x9d, 0x00, 0x00, 0x6e, 0xc8, 0x00, 0x64,
	0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0x24, 0x89, 0x67, 0xb4, 0x99, 0x6c, 0x80, 0x90,
	0x91, 0xff, 0xeb, 0x7c, 0xb4, 0x76, 0x6c, 0x94, 0xb4, 0xd8, 0xc8, 0x90, 0xac, 0x66, 0xd8, 0x73,
	0x7f, 0xb2, 0xd8, 0xeb, 0x00, 0xb4, 0xac, 0xc3, 0x48, 0x00, 0xd8, 0x6c, 0xa7, 0xb4, 0x8d, 0x9a,
	0x60, 0x7f, 0x90, 0x76, 0xfc, 0xff, 0xfc, 0xfc, 0xff, 0x90, 0xeb, 0x90, 0xff, 0xff, 0xca, 0xe9,
	0xd5, 0xaf, 0x6c, 0x6c, 0x54, 0x60, 0xff, 0x66, 0xbc, 0xa0, 0xc5, 0xae, 0xcf, 0xff, 0xb4, 0xd8,
	0x89, 0x70, 0xc0, 0xa5, 0x99, 0x66, 0xc1, 0xad, 0x7a, 0xd6, 0x30, 0x28, 0x6c, 0x48, 0x8f, 0x00,
	0x99, 0x66, 0x00, 0x3f, 0xa3, 0x64, 0xd8, 0xeb, 0x7f, 0xb2, 0x6c, 0x90, 0xd8, 0x95, 0xbf, 0x6c,
	0xcf, 0xcf, 0x90, 0xb2, 0xd8, 0xe5, 0x6a, 0xd8, 0xdd, 0xd8, 0xb4, 0x73, 0x00, 0x00, 0x9d, 0x96,
	0xfd, 0x65, 0xdf, 0x5a, 0x9d, 0xac, 0xf3, 0xdf, 0xf7, 0x6e, 0xff, 0xdb, 0xff, 0xfb, 0xfb, 0xab,
	0x31, 0xc7, 0xfa, 0xaf, 0x6a, 0xaf, 0x03, 0x9d, 0xfe, 0xea, 0x0c, 0x9f, 0xde, 0xa7, 0xf5, 0x7d,
	0x00, 0xc7, 0xff, 0x67, 0xbf, 0x7f, 0x7f, 0x87, 0xfc, 0xce, 0xbf, 0x2f, 0x6f, 0xbe, 0xba, 0xfd,
	0xf2, 0x5f, 0x2d, 0xdf, 0xc8, 0x7f, 0x5b, 0xb5, 0x77, 0x6f, 0x8f, 0xdb, 0x92, 0x7e, 0xf0, 0x5f,
	0xff, 0x9d, 0x40, 0xba, 0xf7, 0xec, 0x6d, 0xfb, 0x64, 0x64, 0x96, 0xe3, 0xc7, 0xf7, 0xd3, 0xff,
	0xaf, 0x7f, 0xf5, 0xf6, 0x73, 0xf7, 0xb2, 0x5a, 0x5f, 0x88, 0x89, 0xb7, 0xbc, 0xfd, 0x7f, 0xe9,
	0x7f, 0x7e, 0x2f, 0xfa, 0x7c, 0xf7, 0x03, 0xa5, 0xc7, 0xea, 0xfb, 0x8d, 0xff, 0xff, 0x79, 0x5b,
	0x00, 0xe7, 0x8d, 0x67, 0xb9, 0xec, 0x59, 0xf7, 0x00, 0xbd, 0x96, 0xaf, 0x00, 0x00, 0x7d, 0x64,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x90, 0x99, 0xbd, 0xd8, 0x99, 0xb4, 0xff, 0xc0,
	0xdb, 0xde, 0x24, 0x91, 0x6c, 0xb2, 0x48, 0x63, 0xfc, 0xfc, 0xc8, 0xfc, 0xeb, 0x00, 0x48, 0xb2,
	0x01, 0x73, 0x48, 0xac, 0xa0, 0x6c, 0xeb, 0xe1, 0x90, 0x7f, 0xfc, 0xd8, 0xe1, 0xd8, 0xf5, 0x46,
	0xff, 0xff, 0x90, 0x75, 0xb4, 0x90, 0x48, 0x90, 0xc0, 0xcf, 0xc7, 0x90, 0xff, 0xff, 0xe9, 0xe9,
	0x00, 0xed, 0xb4, 0xd8, 0xb4, 0xb4, 0xff, 0xff, 0xbc, 0xa0, 0xb2, 0xb7, 0xc0, 0xcf, 0xfc, 0xfc,
	0x99, 0x99, 0xcf, 0xb4, 0xff, 0xff, 0xff, 0xff, 0x03, 0xff, 0x9c, 0x91, 0xd8, 0xb4, 0xa5, 0x8f,
	0xd2, 0xbb, 0x00, 0x24, 0xb9, 0x0c, 0x6c, 0xac, 0x00, 0x73, 0x6c, 0x48, 0xd8, 0x95, 0xbf, 0x6c,
	0x90, 0x90, 0xcf, 0xb2, 0xb4, 0xe7, 0x69, 0x90, 0xad, 0xfc, 0x6c, 0x73, 0x00, 0x7f, 0x49, 0x00,
	0xfe, 0xfd, 0xa5, 0x6f, 0x7f, 0xff, 0x7b, 0xbe, 0xab, 0x11, 0x67, 0xff, 0xb9, 0x55, 0x9d, 0x7f,
	0xfb, 0xde, 0x7f, 0x7f, 0x7f, 0xfb, 0xf0, 0x93, 0xfe, 0xfb, 0xeb, 0xbf, 0xef, 0x5d, 0xf7, 0xfc,
	0x8a, 0xde, 0xff, 0x96, 0x3a, 0xbd, 0xdf, 0xbb, 0xf8, 0x3d, 0xb0, 0xcf, 0x9e, 0xfe, 0x5f, 0xfd,
	0xf3, 0xd9, 0xff, 0x93, 0xc8, 0xbd, 0xaa, 0x37, 0xfd, 0x81, 0x7f, 0xbe, 0xff, 0x7f, 0xf0, 0x91,
	0x4b, 0x4c, 0x40, 0x4b, 0x67, 0xce, 0xff, 0xa9, 0x7d, 0xff, 0x64, 0xd3, 0x6f, 0xf7, 0xb4, 0xf7,
	0xad, 0xcf, 0xfc, 0xe9, 0xcd, 0x7f, 0x81, 0xaf, 0x64, 0xf7, 0x51, 0xf5, 0xa4, 0x7d, 0xdf, 0x3f,
	0xcf, 0xf7, 0xfd, 0xf9, 0x7f, 0xdf, 0xf0, 0x4d, 0x5f, 0xfb, 0xff, 0xfb, 0x4f, 0xdf, 0xa9, 0xf0,
	0x8a, 0x45, 0xba, 0x96, 0xfc, 0xbd, 0x09, 0xb7, 0x00, 0xf2, 0x00, 0x00, 0x00, 0x00, 0x00, 0x64,
}
