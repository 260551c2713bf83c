package mnemonic

// Vectors from the trezor python-mnemonic reference set.
var testVectors = []struct {
	key      string
	sentence string
}{
	{
		key:      "00000000000000000000000000000000",
		sentence: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	},
	{
		key:      "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		sentence: "legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		key:      "80808080808080808080808080808080",
		sentence: "letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		key:      "ffffffffffffffffffffffffffffffff",
		sentence: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
	{
		key:      "000000000000000000000000000000000000000000000000",
		sentence: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon agent",
	},
	{
		key:      "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		sentence: "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal will",
	},
	{
		key:      "808080808080808080808080808080808080808080808080",
		sentence: "letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic avoid letter always",
	},
	{
		key:      "ffffffffffffffffffffffffffffffffffffffffffffffff",
		sentence: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo when",
	},
	{
		key:      "0000000000000000000000000000000000000000000000000000000000000000",
		sentence: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
	},
	{
		key:      "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		sentence: "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title",
	},
	{
		key:      "8080808080808080808080808080808080808080808080808080808080808080",
		sentence: "letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic bless",
	},
	{
		key:      "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		sentence: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
	},
	{
		key:      "9e885d952ad362caeb4efe34a8e91bd2",
		sentence: "ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
	},
	{
		key:      "6610b25967cdcca9d59875f5cb50b0ea75433311869e930b",
		sentence: "gravity machine north sort system female filter attitude volume fold club stay feature office ecology stable narrow fog",
	},
	{
		key:      "68a79eaca2324873eacc50cb9c6eca8cc68ea5d936f98787c60c7ebc74e6ce7c",
		sentence: "hamster diagram private dutch cause delay private meat slide toddler razor book happy fancy gospel tennis maple dilemma loan word shrug inflict delay length",
	},
	{
		key:      "c0ba5a8e914111210f2bd131f3d5e08d",
		sentence: "scheme spot photo card baby mountain device kick cradle pact join borrow",
	},
	{
		key:      "6d9be1ee6ebd27a258115aad99b7317b9c8d28b6d76431c3",
		sentence: "horn tenant knee talent sponsor spell gate clip pulse soap slush warm silver nephew swap uncle crack brave",
	},
	{
		key:      "9f6a2878b2520799a44ef18bc7df394e7061a224d2c33cd015b157d746869863",
		sentence: "panda eyebrow bullet gorilla call smoke muffin taste mesh discover soft ostrich alcohol speed nation flash devote level hobby quick inner drive ghost inside",
	},
	{
		key:      "23db8160a31d3e0dca3688ed941adbf3",
		sentence: "cat swing flag economy stadium alone churn speed unique patch report train",
	},
	{
		key:      "8197a4a47f0425faeaa69deebc05ca29c0a5b5cc76ceacc0",
		sentence: "light rule cinnamon wrap drastic word pride squirrel upgrade then income fatal apart sustain crack supply proud access",
	},
	{
		key:      "066dca1a2bb7e8a1db2832148ce9933eea0f3ac9548d793112d9a95c9407efad",
		sentence: "all hour make first leader extend hole alien behind guard gospel lava path output census museum junior mass reopen famous sing advance salt reform",
	},
	{
		key:      "f30f8c1da665478f49b001d94c5fc452",
		sentence: "vessel ladder alter error federal sibling chat ability sun glass valve picture",
	},
	{
		key:      "c10ec20dc3cd9f652c7fac2f1230f7a3c828389a14392f05",
		sentence: "scissors invite lock maple supreme raw rapid void congress muscle digital elegant little brisk hair mango congress clump",
	},
	{
		key:      "f585c11aec520db57dd353c69554b21a89b20fb0650966fa0a9d6f74fd989d8f",
		sentence: "void come effort suffer camp survey warrior heavy shoot primary clutch crush open amazing screen patrol group space point ten exist slush involve unfold",
	},
}
